// log/stack.go
// Copyright(c) 2025-2026 airdb contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// StackFrame records a single level of a captured call stack in the form
// it appears in the structured logs.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}

// Callstack captures the stack above the logging wrappers, stopping at
// main.main so the go runtime's own frames aren't included.
func Callstack() []StackFrame {
	var callers [16]uintptr
	n := runtime.Callers(3, callers[:]) // skip up to the function that is logging
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(callers[:n])

	var fr []StackFrame
	for {
		frame, more := frames.Next()
		fn := strings.TrimPrefix(frame.Function, "github.com/hackcommons/airdb/")
		fn = strings.TrimPrefix(fn, "main.")

		fr = append(fr, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: fn,
		})

		if !more || frame.Function == "main.main" {
			return fr
		}
	}
}
