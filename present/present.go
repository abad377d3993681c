// Copyright (C) 2025 Cohera Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package present

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cohera-platform/seqgen"
	"github.com/cohera-platform/seqgen/fixture"
)

func drawsText(seed, min, max int64, count int) Func {
	return func(w io.Writer) error {
		gen := seqgen.New(seed)
		for i := 0; i < count; i++ {
			v, err := gen.Draw(min, max)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
				return err
			}
		}
		return nil
	}
}

func drawsJSON(seed, min, max int64, count int) Func {
	return func(w io.Writer) error {
		gen := seqgen.New(seed)
		lw := newListWriter(w)
		for i := 0; i < count; i++ {
			v, err := gen.Draw(min, max)
			if err != nil {
				return err
			}
			lw.elem(v)
		}
		return lw.done()
	}
}

func permText(seed int64, n int) Func {
	return func(w io.Writer) error {
		for _, v := range fixture.New(seed).Perm(n) {
			if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
				return err
			}
		}
		return nil
	}
}

func permJSON(seed int64, n int) Func {
	return func(w io.Writer) error {
		lw := newListWriter(w)
		for _, v := range fixture.New(seed).Perm(n) {
			lw.elem(v)
		}
		return lw.done()
	}
}

func idsText(seed int64, count int) Func {
	return func(w io.Writer) error {
		for _, id := range fixture.New(seed).IDs(count) {
			if _, err := fmt.Fprintf(w, "%d\n", id); err != nil {
				return err
			}
		}
		return nil
	}
}

func idsJSON(seed int64, count int) Func {
	return func(w io.Writer) error {
		lw := newListWriter(w)
		for _, id := range fixture.New(seed).IDs(count) {
			lw.elem(id)
		}
		return lw.done()
	}
}

type listWriter struct {
	w   io.Writer
	err error
	sep string
}

func newListWriter(w io.Writer) (rv *listWriter) {
	rv = &listWriter{
		w:   w,
		sep: "\n"}
	_, rv.err = fmt.Fprint(w, "[")
	return rv
}

func (l *listWriter) elem(elem interface{}) {
	if l.err != nil {
		return
	}
	var data []byte
	data, l.err = json.Marshal(elem)
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, "%s %s", l.sep, data)
	l.sep = ",\n"
}

func (l *listWriter) done() error {
	if l.err != nil {
		return l.err
	}
	_, err := fmt.Fprint(l.w, "]\n")
	return err
}
