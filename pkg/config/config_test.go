package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/depviz/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "config.csv", "graphviz_path,package_name,output_path\nC:\\Graphviz\\bin,react,output.dot\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	graphviz, pkg, output := cfg.Fields()
	if graphviz != `C:\Graphviz\bin` {
		t.Errorf("graphviz_path = %q, want %q", graphviz, `C:\Graphviz\bin`)
	}
	if pkg != "react" {
		t.Errorf("package_name = %q, want %q", pkg, "react")
	}
	if output != "output.dot" {
		t.Errorf("output_path = %q, want %q", output, "output.dot")
	}
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Config
	}{
		{
			name:  "canonical",
			input: "graphviz_path,package_name,output_path\n/usr/bin/dot,express,express.dot\n",
			want:  Config{"/usr/bin/dot", "express", "express.dot"},
		},
		{
			name:  "no trailing newline",
			input: "graphviz_path,package_name,output_path\n/usr/bin/dot,express,express.dot",
			want:  Config{"/usr/bin/dot", "express", "express.dot"},
		},
		{
			name:  "reordered columns",
			input: "output_path,graphviz_path,package_name\nout.dot,dot,lodash\n",
			want:  Config{"dot", "lodash", "out.dot"},
		},
		{
			name:  "extra columns",
			input: "graphviz_path,package_name,output_path,comment\ndot,react,r.dot,ignored\n",
			want:  Config{"dot", "react", "r.dot"},
		},
		{
			name:  "only first row",
			input: "graphviz_path,package_name,output_path\ndot,first,1.dot\ndot,second,2.dot\n",
			want:  Config{"dot", "first", "1.dot"},
		},
		{
			name:  "quoted fields",
			input: "graphviz_path,package_name,output_path\n\"C:\\Program Files\\Graphviz\",@babel/core,\"out, final.dot\"\n",
			want:  Config{`C:\Program Files\Graphviz`, "@babel/core", "out, final.dot"},
		},
		{
			name:  "byte order mark",
			input: "\ufeffgraphviz_path,package_name,output_path\ndot,react,r.dot\n",
			want:  Config{"dot", "react", "r.dot"},
		},
		{
			name:  "empty graphviz path",
			input: "graphviz_path,package_name,output_path\n,react,r.dot\n",
			want:  Config{"", "react", "r.dot"},
		},
		{
			name:  "short row",
			input: "graphviz_path,package_name,output_path\ndot,react\n",
			want:  Config{"dot", "react", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadCSV() error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("ReadCSV() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"header only", "graphviz_path,package_name,output_path\n"},
		{"missing column", "graphviz_path,package_name\ndot,react\n"},
		{"no header", "dot,react,out.dot\n"},
		{"malformed quotes", "graphviz_path,package_name,output_path\n\"dot,react,out.dot\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadCSV() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadValidates(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty package", "graphviz_path,package_name,output_path\ndot,,out.dot\n"},
		{"control character", "graphviz_path,package_name,output_path\ndot,re\x01act,out.dot\n"},
		{"empty output", "graphviz_path,package_name,output_path\ndot,react,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.csv", tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadAcceptsUnusualNames(t *testing.T) {
	for _, pkg := range []string{"a..b", "@babel/core", "JSONStream"} {
		t.Run(pkg, func(t *testing.T) {
			cfg, err := Load(writeFile(t, "config.csv", "graphviz_path,package_name,output_path\n,"+pkg+",out.dot\n"))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.PackageName != pkg {
				t.Errorf("package_name = %q, want %q", cfg.PackageName, pkg)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "depviz.toml", `
graphviz_path = "/opt/graphviz/bin"
package_name = "react"
output_path = "react.dot"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{"/opt/graphviz/bin", "react", "react.dot"}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"depviz.yaml", "depviz.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "graphviz_path: /usr/bin\npackage_name: express\noutput_path: out/express.dot\n")

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			want := Config{"/usr/bin", "express", "out/express.dot"}
			if *cfg != want {
				t.Errorf("Load() = %+v, want %+v", *cfg, want)
			}
		})
	}
}

func TestLoadStructuredErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad toml", "c.toml", "package_name = \n"},
		{"empty toml", "c.toml", ""},
		{"bad yaml", "c.yaml", "package_name: [unterminated\n"},
		{"empty yaml", "c.yml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
