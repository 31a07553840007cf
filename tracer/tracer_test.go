// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package tracer

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlush(t *testing.T) {
	require.NoError(t, Flush(&bytes.Buffer{}))

	Log("opened document")
	Log("page 1 analysed")

	var buf bytes.Buffer
	require.NoError(t, Flush(&buf))
	assert.Equal(t, "opened document\npage 1 analysed\n", buf.String())
	assert.Empty(t, Messages())
}

func TestLog_Concurrent(t *testing.T) {
	require.NoError(t, Flush(&bytes.Buffer{}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			Log(fmt.Sprintf("doc %d", i))
		}()
	}
	wg.Wait()
	assert.Len(t, Messages(), 50)
}
