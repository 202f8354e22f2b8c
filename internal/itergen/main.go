// Command itergen writes the fixed-arity iterator family of package ecs:
// TupleN, NonPackedN and its filter and with-id adapters for each arity.
//
//	go run ./internal/itergen -pkg ecs -min 2 -max 10 -out ecs/non_packed_generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

type arity struct {
	N     int
	Slots []int
}

type fileData struct {
	Package string
	Arities []arity
}

func join(n int, f func(i int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f(i + 1)
	}
	return strings.Join(parts, ", ")
}

var funcs = template.FuncMap{
	"dec": func(i int) int { return i - 1 },
	"typeParams": func(n int) string {
		return join(n, func(i int) string { return fmt.Sprintf("T%d", i) })
	},
	"ptrList": func(n int) string {
		return join(n, func(i int) string { return fmt.Sprintf("*T%d", i) })
	},
	"fieldList": func(n int) string {
		return join(n, func(i int) string { return fmt.Sprintf("t.V%d", i) })
	},
	"setParams": func(n int) string {
		return join(n, func(i int) string { return fmt.Sprintf("s%d *SparseSet[T%d]", i, i) })
	},
	"lenList": func(n int) string {
		return join(n, func(i int) string { return fmt.Sprintf("s%d.Len()", i) })
	},
}

// Generate renders the iterator family for arities min through max and
// returns gofmt-formatted source.
func Generate(pkg string, min, max int) ([]byte, error) {
	if min < 2 || max < min {
		return nil, eris.Errorf("invalid arity range %d..%d", min, max)
	}

	data := fileData{Package: pkg}
	for n := min; n <= max; n++ {
		a := arity{N: n, Slots: make([]int, n)}
		for i := range a.Slots {
			a.Slots[i] = i + 1
		}
		data.Arities = append(data.Arities, a)
	}

	tmpl, err := template.New("iterators").Funcs(funcs).Parse(iteratorsTemplate)
	if err != nil {
		return nil, eris.Wrap(err, "parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, eris.Wrap(err, "execute template")
	}

	src, err := imports.Process("non_packed_generated.go", buf.Bytes(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "format generated source")
	}
	return src, nil
}

func main() {
	pkg := flag.String("pkg", "ecs", "package name of the generated file")
	min := flag.Int("min", 2, "smallest arity to generate")
	max := flag.Int("max", 10, "largest arity to generate")
	out := flag.String("out", "non_packed_generated.go", "output file")
	flag.Parse()

	log := zap.Must(zap.NewDevelopment())
	defer log.Sync()

	src, err := Generate(*pkg, *min, *max)
	if err != nil {
		log.Fatal("generate iterators", zap.Error(err))
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal("write output", zap.String("path", *out), zap.Error(err))
	}
	log.Info("wrote iterators", zap.String("path", *out), zap.Int("min", *min), zap.Int("max", *max))
}
