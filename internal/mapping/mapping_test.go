package mapping

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vedranvinko/rene/internal/config"
	"github.com/vedranvinko/rene/internal/source"
	"github.com/vedranvinko/rene/internal/types"
)

func TestBuild(t *testing.T) {
	custom := &config.Config{Delimiter: ";", URL: "http://internal/"}

	tests := []struct {
		name string
		data string
		cfg  *config.Config
		want types.RedirectMap
	}{
		{
			name: "empty input",
			data: "",
			cfg:  config.Default(),
			want: types.RedirectMap{},
		},
		{
			name: "two lines",
			data: "/foo,/bar\n/baz,/qux",
			cfg:  config.Default(),
			want: types.RedirectMap{"/foo": "/bar", "/baz": "/qux"},
		},
		{
			name: "base url removed from key and value",
			data: "https://example.org/a,https://example.org/b",
			cfg:  config.Default(),
			want: types.RedirectMap{"/a": "/b"},
		},
		{
			name: "base url removed everywhere, not only as prefix",
			data: "/x/https://example.org/y,https://example.org/https://example.org/z",
			cfg:  config.Default(),
			want: types.RedirectMap{"/x//y": "//z"},
		},
		{
			name: "last duplicate wins",
			data: "/a,/first\n/b,/other\n/a,/last\n",
			cfg:  config.Default(),
			want: types.RedirectMap{"/a": "/last", "/b": "/other"},
		},
		{
			name: "extra fields are discarded",
			data: "/a,/b,/c",
			cfg:  config.Default(),
			want: types.RedirectMap{"/a": "/b"},
		},
		{
			name: "empty and crlf lines",
			data: "/a,/b\r\n\r\n\n/c,/d\r\n",
			cfg:  config.Default(),
			want: types.RedirectMap{"/a": "/b", "/c": "/d"},
		},
		{
			name: "tab delimiter keeps a line holding only the delimiter",
			data: "/a\t/b\n\t\n",
			cfg:  &config.Config{Delimiter: "\t", URL: ""},
			want: types.RedirectMap{"/a": "/b", "": ""},
		},
		{
			name: "custom delimiter and url",
			data: "http://internal/old;http://internal/new\n/a,b;/c",
			cfg:  custom,
			want: types.RedirectMap{"old": "new", "/a,b": "/c"},
		},
		{
			name: "multi-character delimiter",
			data: "/a => /b",
			cfg:  &config.Config{Delimiter: " => ", URL: ""},
			want: types.RedirectMap{"/a": "/b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.data, tt.cfg)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuild_entryCount(t *testing.T) {
	var lines []string
	for _, key := range []string{"/a", "/b", "/c", "/d", "/e"} {
		lines = append(lines, key+",/target"+key)
	}

	got, err := Build(strings.Join(lines, "\n"), config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(got) != len(lines) {
		t.Errorf("Build() returned %d entries, want %d", len(got), len(lines))
	}
}

func TestBuild_malformedLine(t *testing.T) {
	_, err := Build("/a,/b\n/missing-value\n/c,/d", config.Default())
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("Build() error = %v, want ErrMalformedLine", err)
	}

	var lineErr *MalformedLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Build() error = %T, want *MalformedLineError", err)
	}
	if lineErr.Line != 2 || lineErr.Text != "/missing-value" {
		t.Errorf("MalformedLineError = %+v, want line 2", lineErr)
	}
	if !strings.Contains(err.Error(), "malformed line 2: missing value") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestBuild_whitespaceOnlyLineIsMalformed(t *testing.T) {
	_, err := Build("/a,/b\n   \n/c,/d", config.Default())

	var lineErr *MalformedLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("Build() error = %v, want *MalformedLineError", err)
	}
	if lineErr.Line != 2 || lineErr.Text != "   " {
		t.Errorf("MalformedLineError = %+v, want line 2", lineErr)
	}
}

func TestBuilder_stats(t *testing.T) {
	b := New(config.Default())
	if err := b.AddText("/a,/1\n/b,/2\n/a,/3\n/a,/4"); err != nil {
		t.Fatal(err)
	}

	if b.Records() != 4 {
		t.Errorf("Records() = %d, want 4", b.Records())
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if b.Duplicates() != 2 {
		t.Errorf("Duplicates() = %d, want 2", b.Duplicates())
	}
}

func TestBuildRows(t *testing.T) {
	rows := []source.Row{
		{Number: 1, Cells: []string{"https://example.org/a", "https://example.org/b"}},
		{Number: 2, Cells: nil},
		{Number: 3, Cells: []string{"/c,x", "/d", "note"}},
	}

	got, err := BuildRows(rows, config.Default())
	if err != nil {
		t.Fatalf("BuildRows() error = %v", err)
	}
	want := types.RedirectMap{"/a": "/b", "/c,x": "/d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildRows() = %v, want %v", got, want)
	}

	_, err = BuildRows([]source.Row{{Number: 7, Cells: []string{"/only-key"}}}, config.Default())
	var lineErr *MalformedLineError
	if !errors.As(err, &lineErr) || lineErr.Line != 7 {
		t.Errorf("BuildRows() error = %v, want malformed row 7", err)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{name: "empty", data: "", want: nil},
		{name: "single newline", data: "\n", want: []string{""}},
		{name: "no trailing newline", data: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", data: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", data: "a\r\nb\r\n", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lines(tt.data); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}
