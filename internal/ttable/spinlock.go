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

package ttable

import (
	"runtime"

	"github.com/abdada-go/engine/internal/util"
)

// spinLock is a CAS-loop mutex built directly on internal/util.Bool's
// atomic two-state wrapper. Critical sections under it are a handful of
// slot compares and swaps - short enough that parking on an OS mutex
// would cost more than spinning, which is why the spec calls for a
// spin-lock here rather than sync.Mutex. The zero value is unlocked,
// matching util.Bool's zero value of false.
type spinLock struct{ held util.Bool }

// lock spins until it acquires the lock, yielding the processor between
// attempts so a stuck waiter doesn't starve the goroutine holding it.
func (l *spinLock) lock() {
	for !l.held.CAS(false, true) {
		runtime.Gosched()
	}
}

func (l *spinLock) unlock() {
	l.held.Store(false)
}
