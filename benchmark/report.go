// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"io"
)

type row struct {
	label string
	value interface{}
}

// WriteTo - render the report as a two column table
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	readToo := r.Configuration.ReadToo

	rows := []row{
		{"iterations", r.Configuration.Iterations},
		{"string length", r.Configuration.StringLength},
		{"read too", readToo},
		{"seed", r.Configuration.Seed},
		{"tree items", r.Tree.Items},
		{"tree populate", r.Tree.Populate},
	}
	if readToo {
		rows = append(rows, row{"tree read all", r.Tree.ReadAll})
	}
	rows = append(rows,
		row{"probe lookup before balance", r.LookupBefore.Elapsed},
		row{"height before balance", r.HeightBefore},
		row{"balance", r.Balance},
		row{"height after balance", r.HeightAfter},
		row{"probe lookup after balance", r.LookupAfter.Elapsed},
		row{"copy height", r.CopyHeight},
		row{"copy height after balance", r.CopyBalancedHeight},
	)
	for _, b := range r.Baselines {
		rows = append(rows, row{b.Name + " populate", b.Populate})
		if readToo {
			rows = append(rows, row{b.Name + " read all", b.ReadAll})
		}
	}

	total := int64(0)
	for _, item := range rows {
		n, err := fmt.Fprintf(w, "%-40s %12v\n", item.label+":", item.value)
		total += int64(n)
		if nil != err {
			return total, err
		}
	}
	return total, nil
}
