// Copyright (c) 2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmit(t *testing.T) {
	m := NewManager()

	var got []string
	m.Register("a", func(data interface{}) {
		got = append(got, "first:"+data.(string))
	})
	m.Register("a", func(data interface{}) {
		got = append(got, "second:"+data.(string))
	})
	m.Register("b", func(data interface{}) {
		got = append(got, "b:"+data.(string))
	})

	m.Emit("a", "x")
	m.Emit("c", "ignored")

	want := []string{"first:x", "second:x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}
