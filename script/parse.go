// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bintree/fault"
)

// Verb - the operation of a script line
type Verb string

// all verbs
const (
	Insert  Verb = "insert"
	Remove  Verb = "remove"
	Find    Verb = "find"
	List    Verb = "list"
	Print   Verb = "print"
	Height  Verb = "height"
	Count   Verb = "count"
	Balance Verb = "balance"
	Clone   Verb = "clone"
	Destroy Verb = "destroy"
	Check   Verb = "check"
)

// internal: number of arguments after the verb, -1 for key plus value
var arity = map[Verb]int{
	Insert:  -1,
	Remove:  1,
	Find:    1,
	List:    0,
	Print:   0,
	Height:  0,
	Count:   0,
	Balance: 0,
	Clone:   0,
	Destroy: 0,
	Check:   0,
}

// Operation - one parsed script line
type Operation struct {
	Line  int
	Verb  Verb
	Key   int64
	Value string
}

// Parse - read a script
func Parse(r io.Reader) ([]Operation, error) {
	ops := []Operation{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1
		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		verb := Verb(strings.ToLower(fields[0]))
		n, ok := arity[verb]
		if !ok {
			return nil, fmt.Errorf("line %d: %w: %q", line, fault.ErrUnknownOperation, fields[0])
		}

		op := Operation{
			Line: line,
			Verb: verb,
		}

		args := fields[1:]
		switch {
		case -1 == n && len(args) < 2:
			return nil, fmt.Errorf("line %d: %w: %s needs a key and a value", line, fault.ErrScriptSyntax, verb)
		case n >= 0 && len(args) != n:
			return nil, fmt.Errorf("line %d: %w: %s takes %d argument(s)", line, fault.ErrScriptSyntax, verb, n)
		}

		if 0 != n {
			key, err := strconv.ParseInt(args[0], 10, 64)
			if nil != err {
				return nil, fmt.Errorf("line %d: %w: invalid key: %q", line, fault.ErrScriptSyntax, args[0])
			}
			op.Key = key
		}
		if -1 == n {
			// keep the value exactly as written after the key
			rest := strings.TrimSpace(text[len(fields[0]):])
			op.Value = strings.TrimSpace(rest[len(args[0]):])
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return ops, nil
}
