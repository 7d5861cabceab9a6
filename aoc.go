// Package aoc is a small harness for running Advent of Code solvers.
//
// A solver is a struct embedding *Puzzle with methods named D{day}p{part}.
// Each method's doc comment may carry a sample in the form
//
//	want=<answer>
//
//	<sample input>
//
// which is checked before the method is run against the real input.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: strings.TrimSpace(m[1]), input: m[2]}, true
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples
}

// Puzzle is embedded in solvers and gives access to the input of the
// part being run.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if flagInput != "" {
		return MustGet(os.ReadFile(flagInput))
	}
	return fileOrFetch(
		fmt.Sprintf("%d/%d.input", p.year, p.day.day),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day),
	)
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}, grouped
// by day. x must be a pointer to a struct.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		name := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: want func() any, got %v", name, v.Method(i).Type())
		}
		d := Int(m[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: m[2],
			Name: name,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagInput      string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", "read puzzle input from this file instead of the cache")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs every part of day and reports whether all samples passed.
func runDay(slvr any, year int, d day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	fmt.Println("Running day", d.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if (sm && flagSkipSample) || (!sm && flagOnlySample) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching isn't timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s sample: %v ❌; want %v\n", ps.Part, got, want)
				return false
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
		}
	}
	return true
}

// Run runs the solvers on slvr for the given year. src is the Go source
// of the solver, used to extract samples. Run exits with status 1 if any
// sample fails.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(slvr, year, d, samples) {
			os.Exit(1)
		}
		return
	}

	ok := true
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, n := range dayNums {
		if !runDay(slvr, year, days[n], samples) {
			ok = false
		}
		fmt.Println()
	}
	if !ok {
		os.Exit(1)
	}
}

var session = sync.OnceValue(func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without prefix. It is fatal if s does not start
// with prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel calls f on each element of in concurrently and returns the
// results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(Parallel(in, f), f2, defVal)
}
