package generate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ericlevine/barnode"
)

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

const panicSymbology barnode.Symbology = 901

func init() {
	barnode.Register(&barnode.Descriptor{
		Symbology: panicSymbology,
		Name:      "panics",
		Charset:   barnode.ASCII,
		MinLength: 1,
		MaxLength: 10,
		Linear:    true,
		BarHeight: 10,
		Encoder: barnode.EncoderFunc(func(string, barnode.Options) (*barnode.Symbol, error) {
			panic("encoder bug")
		}),
	})
}

func quiet() *Generator {
	return New(WithLogger(log.New(io.Discard)))
}

func config(s barnode.Symbology) barnode.Config {
	cfg := barnode.DefaultConfig()
	cfg.Symbology = s
	return cfg
}

func TestCreateStream(t *testing.T) {
	res := quiet().CreateStream(context.Background(), config(barnode.SymbologyCode128), "12345", "png")
	if res.Code != 0 || res.Message != nil {
		t.Fatalf("result = %+v, message %v", res, res.Err())
	}
	if res.Data == nil || !base64Pattern.MatchString(*res.Data) {
		t.Fatalf("data is not base64: %v", res.Data)
	}
	if _, err := base64.StdEncoding.DecodeString(*res.Data); err != nil {
		t.Error(err)
	}
}

func TestCreateStreamEverySymbology(t *testing.T) {
	texts := map[barnode.Symbology]string{
		barnode.SymbologyITF:        "1234",
		barnode.SymbologyCode39:     "CODE39",
		barnode.SymbologyExtCode39:  "code39",
		barnode.SymbologyEAN:        "400638133393",
		barnode.SymbologyCodabar:    "A40156B",
		barnode.SymbologyCode128:    "Hello 123",
		barnode.SymbologyCode93:     "TEST93",
		barnode.SymbologyUPCA:       "72527273070",
		barnode.SymbologyUPCE:       "0123456",
		barnode.SymbologyQRCode:     "https://example.com",
		barnode.SymbologyDataMatrix: "Data Matrix",
		barnode.SymbologyAztec:      "Aztec Code 2D",
	}
	g := quiet()
	for s, text := range texts {
		for _, format := range []string{"png", "svg", "eps", "gif"} {
			res := g.CreateStream(context.Background(), config(s), text, format)
			if !res.OK() {
				t.Errorf("%s as %s: %v", s, format, res.Err())
			}
		}
	}
}

func TestCreateStreamLargeVector(t *testing.T) {
	cfg := config(barnode.SymbologyCode128)
	cfg.Scale = 100
	res := quiet().CreateStream(context.Background(), cfg, strings.Repeat("A", 160), "svg")
	if !res.OK() {
		t.Fatalf("svg at scale 100: %v", res.Err())
	}
}

func TestCreateStreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		cfg    func(*barnode.Config)
		text   string
		format string
		code   int
	}{
		{"unknown symbology", func(c *barnode.Config) { c.Symbology = 500 }, "12345", "png", barnode.CodeValidation},
		{"invalid character", func(c *barnode.Config) { c.Symbology = barnode.SymbologyEAN }, "12A", "png", barnode.CodeInvalidData},
		{"too long", func(c *barnode.Config) { c.Symbology = barnode.SymbologyEAN }, "12345678901234", "png", barnode.CodeTooLong},
		{"empty text", nil, "", "png", barnode.CodeTooLong},
		{"bad check digit", func(c *barnode.Config) { c.Symbology = barnode.SymbologyEAN }, "4006381333932", "png", barnode.CodeInvalidCheck},
		{"bad option", func(c *barnode.Config) { c.Option1 = 3 }, "12345", "png", barnode.CodeInvalidOption},
		{"bad colour", func(c *barnode.Config) { c.ForegroundColor = "zzzzzz" }, "12345", "png", barnode.CodeValidation},
		{"bad scale", func(c *barnode.Config) { c.Scale = -1 }, "12345", "png", barnode.CodeValidation},
		{"bad rotation", func(c *barnode.Config) { c.Rotation = 45 }, "12345", "png", barnode.CodeValidation},
		{"unsupported format", nil, "12345", "webp", barnode.CodeUnsupportedFormat},
		{"raster too large", func(c *barnode.Config) { c.Scale = 100; c.Height = 1000 }, strings.Repeat("A", 160), "png", barnode.CodeValidation},
		{"panicking encoder", func(c *barnode.Config) { c.Symbology = panicSymbology }, "x", "png", barnode.CodeValidation},
	}
	g := quiet()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config(barnode.SymbologyCode128)
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			res := g.CreateStream(context.Background(), cfg, tt.text, tt.format)
			if res.Code != tt.code {
				t.Errorf("code = %d, want %d (%v)", res.Code, tt.code, res.Err())
			}
			if res.Data != nil {
				t.Errorf("data = %q, want nil", *res.Data)
			}
			if res.Message == nil || *res.Message == "" {
				t.Error("failure without message")
			}
		})
	}
}

func TestCreateStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := quiet().CreateStream(ctx, config(barnode.SymbologyCode128), "12345", "png")
	if res.OK() || !strings.Contains(*res.Message, "canceled") {
		t.Errorf("result = %+v", res)
	}
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testfile.png")
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file exists before the call: %v", err)
	}
	cfg := config(barnode.SymbologyCode128)
	cfg.FileName = path
	res := quiet().CreateFile(context.Background(), cfg, "12345")
	if res.Code != 0 || res.Message != nil || res.Data != nil {
		t.Fatalf("result = %+v (%v)", res, res.Err())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file missing: %v", err)
	}
}

func TestCreateFileInvalidSymbology(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testfile.png")
	cfg := config(500)
	cfg.FileName = path
	res := quiet().CreateFile(context.Background(), cfg, "12345")
	if res.Code == 0 || res.Message == nil || *res.Message == "" {
		t.Fatalf("result = %+v", res)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file should not exist: %v", err)
	}
}

func TestCreateFileSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testfile.svg")
	cfg := config(barnode.SymbologyCode128)
	cfg.FileName = path
	if res := quiet().CreateFile(context.Background(), cfg, "12345"); !res.OK() {
		t.Fatal(res.Err())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	root := ""
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("malformed XML: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && root == "" {
			root = se.Name.Local
		}
	}
	if root != "svg" {
		t.Errorf("root element = %q, want svg", root)
	}
}

func TestCreateFileIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testfile.svg")
	g := quiet()
	cfg := config(barnode.SymbologyCode128)
	cfg.FileName = path
	for i := 0; i < 2; i++ {
		if res := g.CreateFile(context.Background(), cfg, "12345"); res.Code != 0 {
			t.Fatalf("call %d: %v", i, res.Err())
		}
	}
	cfg.ForegroundColor = "123456"
	if res := g.CreateFile(context.Background(), cfg, "12345"); res.Code != 0 {
		t.Fatal(res.Err())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `fill="#123456"`) || strings.Contains(string(data), `fill="#fff000"`) {
		t.Errorf("file does not hold only the latest content:\n%s", data)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want 1", len(entries))
	}
}

func TestCreateFileUnwritable(t *testing.T) {
	cfg := config(barnode.SymbologyCode128)
	cfg.FileName = filepath.Join(t.TempDir(), "missing", "testfile.png")
	res := quiet().CreateFile(context.Background(), cfg, "12345")
	if res.Code != barnode.CodeFileAccess {
		t.Errorf("code = %d, want %d (%v)", res.Code, barnode.CodeFileAccess, res.Err())
	}
}

func TestAsync(t *testing.T) {
	g := quiet()
	ch := g.CreateStreamAsync(context.Background(), config(barnode.SymbologyQRCode), "async", "svg")
	res, ok := <-ch
	if !ok || !res.OK() {
		t.Fatalf("result = %+v, ok = %v", res, ok)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after one result")
	}

	cfg := config(barnode.SymbologyDataMatrix)
	cfg.FileName = filepath.Join(t.TempDir(), "async.png")
	if res := <-g.CreateFileAsync(context.Background(), cfg, "async"); !res.OK() {
		t.Errorf("file: %v", res.Err())
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	fileCfg := config(barnode.SymbologyEAN)
	fileCfg.FileName = filepath.Join(dir, "ean.png")
	jobs := []Job{
		{Config: config(barnode.SymbologyCode128), Text: "12345", Format: "png"},
		{Config: config(500), Text: "12345", Format: "png"},
		{Config: fileCfg, Text: "400638133393"},
		{Config: config(barnode.SymbologyQRCode), Text: "batch", Format: "svg"},
	}
	for i := 0; i < 20; i++ {
		jobs = append(jobs, Job{Config: config(barnode.SymbologyCode39), Text: "BATCH", Format: "bmp"})
	}
	results := quiet().Batch(context.Background(), jobs)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results for %d jobs", len(results), len(jobs))
	}
	if !results[0].OK() || results[0].Data == nil {
		t.Errorf("job 0: %+v", results[0])
	}
	if results[1].Code != barnode.CodeValidation {
		t.Errorf("job 1: code = %d", results[1].Code)
	}
	if !results[2].OK() || results[2].Data != nil {
		t.Errorf("job 2: %+v", results[2])
	}
	if _, err := os.Stat(fileCfg.FileName); err != nil {
		t.Errorf("job 2 file: %v", err)
	}
	for i, r := range results[3:] {
		if !r.OK() {
			t.Errorf("job %d: %v", i+3, r.Err())
		}
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	ctx := WithContextLogger(context.Background(), l)

	quiet().CreateStream(ctx, config(barnode.SymbologyCode128), "12345", "png")
	out := buf.String()
	for _, want := range []string{"encoded", "symbology", "Code 128", "rendered"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	quiet().CreateStream(ctx, config(500), "12345", "png")
	if out := buf.String(); !strings.Contains(out, "generation failed") || !strings.Contains(out, "code=9") {
		t.Errorf("warning missing:\n%s", out)
	}
}

func TestPackageLevel(t *testing.T) {
	res := CreateStream(context.Background(), config(barnode.SymbologyCode128), "12345", "jpg")
	if !res.OK() {
		t.Fatal(res.Err())
	}
	res = <-CreateStreamAsync(context.Background(), config(barnode.SymbologyCode128), "12345", "tif")
	if !res.OK() {
		t.Fatal(res.Err())
	}
	rs := Batch(context.Background(), []Job{{Config: config(500), Text: "1", Format: "png"}})
	if len(rs) != 1 || rs[0].OK() {
		t.Errorf("batch = %+v", rs)
	}
}
