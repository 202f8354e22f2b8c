package main

const iteratorsTemplate = `// Code generated by itergen. DO NOT EDIT.

package {{.Package}}

import "iter"
{{range .Arities}}{{$n := .N}}{{$tp := typeParams .N}}
// Tuple{{$n}} holds one component pointer per storage of a {{$n}}-way iteration.
type Tuple{{$n}}[{{$tp}} any] struct {
{{- range .Slots}}
	V{{.}} *T{{.}}
{{- end}}
}

// Values unpacks the tuple.
func (t Tuple{{$n}}[{{$tp}}]) Values() ({{ptrList .N}}) {
	return {{fieldList .N}}
}

// NonPacked{{$n}} walks {{$n}} storages in lock-step. Candidates come from the
// dense keys of the driving storage; every other storage is probed per candidate.
type NonPacked{{$n}}[{{$tp}} any] struct {
{{- range .Slots}}
	s{{.}} *SparseSet[T{{.}}]
{{- end}}
	keys    []EntityId
	current int
	end     int
	array   int
}

// Iter{{$n}} iterates the entities present in all {{$n}} storages.
func Iter{{$n}}[{{$tp}} any]({{setParams .N}}) *NonPacked{{$n}}[{{$tp}}] {
	array := driving({{lenList .N}})
	var keys []EntityId
	switch array {
{{- range .Slots}}
	case {{dec .}}:
		keys = s{{.}}.keys
{{- end}}
	}
	return &NonPacked{{$n}}[{{$tp}}]{
{{- range .Slots}}
		s{{.}}: s{{.}},
{{- end}}
		keys: keys,
		end: len(keys),
		array: array,
	}
}

func (it *NonPacked{{$n}}[{{$tp}}]) next() (EntityId, Tuple{{$n}}[{{$tp}}], bool) {
	for it.current < it.end {
		id := it.keys[it.current]
		it.current++
		var t Tuple{{$n}}[{{$tp}}]
{{- range .Slots}}
		if it.array == {{dec .}} {
			t.V{{.}} = &it.s{{.}}.values[it.current-1]
		} else if i, ok := it.s{{.}}.resolve(id); ok {
			t.V{{.}} = &it.s{{.}}.values[i]
		} else {
			continue
		}
{{- end}}
		return id, t, true
	}
	return 0, Tuple{{$n}}[{{$tp}}]{}, false
}

// Next returns the next entity's components, skipping candidates missing
// from any storage.
func (it *NonPacked{{$n}}[{{$tp}}]) Next() (Tuple{{$n}}[{{$tp}}], bool) {
	_, t, ok := it.next()
	return t, ok
}

// SizeHint returns bounds on the remaining item count.
func (it *NonPacked{{$n}}[{{$tp}}]) SizeHint() (int, int) {
	return 0, it.end - it.current
}

func (it *NonPacked{{$n}}[{{$tp}}]) All() iter.Seq[Tuple{{$n}}[{{$tp}}]] {
	return func(yield func(Tuple{{$n}}[{{$tp}}]) bool) {
		for {
			t, ok := it.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Filtered skips tuples that do not satisfy pred.
func (it *NonPacked{{$n}}[{{$tp}}]) Filtered(pred func(Tuple{{$n}}[{{$tp}}]) bool) *NonPackedFilter{{$n}}[{{$tp}}] {
	return &NonPackedFilter{{$n}}[{{$tp}}]{iter: it, pred: pred}
}

// WithId yields the entity key alongside its components.
func (it *NonPacked{{$n}}[{{$tp}}]) WithId() *NonPackedWithId{{$n}}[{{$tp}}] {
	return &NonPackedWithId{{$n}}[{{$tp}}]{iter: it}
}

// Split bisects the remaining candidates. The halves share the storages and
// cover disjoint ranges.
func (it *NonPacked{{$n}}[{{$tp}}]) Split() (*NonPacked{{$n}}[{{$tp}}], *NonPacked{{$n}}[{{$tp}}], bool) {
	n := it.end - it.current
	if n < 2 {
		return it, nil, false
	}
	right := *it
	right.current += n / 2
	it.end = right.current
	return it, &right, true
}

func (it *NonPacked{{$n}}[{{$tp}}]) FoldWith(folder Folder[Tuple{{$n}}[{{$tp}}]]) Folder[Tuple{{$n}}[{{$tp}}]] {
	return ConsumeIter(folder, it.All())
}

type NonPackedFilter{{$n}}[{{$tp}} any] struct {
	iter *NonPacked{{$n}}[{{$tp}}]
	pred func(Tuple{{$n}}[{{$tp}}]) bool
}

func (it *NonPackedFilter{{$n}}[{{$tp}}]) Next() (Tuple{{$n}}[{{$tp}}], bool) {
	for {
		t, ok := it.iter.Next()
		if !ok {
			return t, false
		}
		if it.pred(t) {
			return t, true
		}
	}
}

func (it *NonPackedFilter{{$n}}[{{$tp}}]) SizeHint() (int, int) {
	return it.iter.SizeHint()
}

func (it *NonPackedFilter{{$n}}[{{$tp}}]) All() iter.Seq[Tuple{{$n}}[{{$tp}}]] {
	return func(yield func(Tuple{{$n}}[{{$tp}}]) bool) {
		for {
			t, ok := it.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

type NonPackedWithId{{$n}}[{{$tp}} any] struct {
	iter *NonPacked{{$n}}[{{$tp}}]
}

func (it *NonPackedWithId{{$n}}[{{$tp}}]) Next() (EntityId, Tuple{{$n}}[{{$tp}}], bool) {
	return it.iter.next()
}

func (it *NonPackedWithId{{$n}}[{{$tp}}]) SizeHint() (int, int) {
	return it.iter.SizeHint()
}

func (it *NonPackedWithId{{$n}}[{{$tp}}]) All() iter.Seq2[EntityId, Tuple{{$n}}[{{$tp}}]] {
	return func(yield func(EntityId, Tuple{{$n}}[{{$tp}}]) bool) {
		for {
			id, t, ok := it.Next()
			if !ok || !yield(id, t) {
				return
			}
		}
	}
}
{{end}}`
