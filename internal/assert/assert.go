// +build !debug

//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert lets internal invariants be written down as assertions
// without paying their cost in a release build: DEBUG is a compile-time
// const, so a guarded call compiles away entirely when it is false.
package assert

// DEBUG gates whether Assert actually evaluates its condition. Release
// builds of the search hot path must never pay for assertions, so every
// call site guards itself with `if assert.DEBUG { ... }` in addition to
// this no-op body - the Go compiler then drops the guarded block too.
const DEBUG = false

// Assert is the release variant: its body is empty, so it never checks
// test and never panics. Callers must still guard the call with
// `if assert.DEBUG { }`, since Go evaluates msg's arguments even when
// this body is empty.
func Assert(test bool, msg string, a ...interface{}) {}
