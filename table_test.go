// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCropRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want [][]string
	}{
		{
			name: "edges only",
			rows: [][]string{{" ", ""}, {"a", "b"}, {"", ""}, {"c", "d"}, {"", "\t"}},
			want: [][]string{{"a", "b"}, {"", ""}, {"c", "d"}},
		},
		{
			name: "nothing to crop",
			rows: [][]string{{"a", ""}, {"", "b"}},
			want: [][]string{{"a", ""}, {"", "b"}},
		},
		{
			name: "all blank",
			rows: [][]string{{""}, {" "}},
			want: [][]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropRows(tt.rows)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CropRows(got), "cropping twice changes nothing")
		})
	}

	assert.Empty(t, CropRows(nil))
}

func TestTable_Crop(t *testing.T) {
	table := Table{
		Rows:        [][]string{{"", ""}, {"a", "b"}, {"", ""}},
		PageNumber:  2,
		TotalPages:  5,
		TableIndex:  1,
		TotalTables: 1,
	}
	cropped := table.Crop()
	assert.Equal(t, [][]string{{"a", "b"}}, cropped.Rows)
	assert.Equal(t, 2, cropped.PageNumber)
	assert.Equal(t, 5, cropped.TotalPages)
	assert.Len(t, table.Rows, 3)

	columns, rows := cropped.Dimensions()
	assert.Equal(t, 2, columns)
	assert.Equal(t, 1, rows)
}
