package listing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/danmuck/spritelist/internal/testutil/testlog"
	"github.com/rs/zerolog/log"
)

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprite_data.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func convertBytes(t *testing.T, data []byte) string {
	t.Helper()
	in := writeInput(t, data)
	out := filepath.Join(t.TempDir(), "sprite_data.asm")
	res, err := ConvertFile(in, out)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Bytes != len(data) {
		t.Fatalf("unexpected byte count: %d", res.Bytes)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(got)
}

func TestConvertFileEmptyInput(t *testing.T) {
	testlog.Start(t)
	got := convertBytes(t, nil)
	if got != "" {
		t.Fatalf("expected empty listing, got %q", got)
	}
}

func TestConvertFileSingleByte(t *testing.T) {
	testlog.Start(t)
	got := convertBytes(t, []byte{65})
	if got != "65, " {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestConvertFileFullRecordHasNoBreak(t *testing.T) {
	testlog.Start(t)
	got := convertBytes(t, make([]byte, 64))
	want := strings.Repeat("0, ", 64)
	if got != want {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestConvertFileBreaksBeforeSecondRecord(t *testing.T) {
	testlog.Start(t)
	data := bytes.Repeat([]byte{1}, 64)
	data = append(data, 2)
	got := convertBytes(t, data)
	want := strings.Repeat("1, ", 64) + "\n" + "2, "
	if got != want {
		t.Fatalf("unexpected listing: %q", got)
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "sprite_data.asm")

	_, err := ConvertFile(filepath.Join(dir, "missing.bin"), out)
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
	var accessErr *FileAccessError
	if !errors.As(err, &accessErr) || accessErr.Op != "read" {
		t.Fatalf("expected read FileAccessError, got %#v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("destination should not exist, stat err=%v", err)
	}
	log.Debug().Err(err).Msg("missing input rejected")
}

func TestConvertFileUncreatableDestination(t *testing.T) {
	testlog.Start(t)
	in := writeInput(t, []byte{1, 2, 3})
	out := filepath.Join(t.TempDir(), "missing-dir", "sprite_data.asm")

	_, err := ConvertFile(in, out)
	var accessErr *FileAccessError
	if !errors.As(err, &accessErr) || accessErr.Op != "create" {
		t.Fatalf("expected create FileAccessError, got %v", err)
	}
	if accessErr.Path != out {
		t.Fatalf("unexpected error path: %q", accessErr.Path)
	}
}

func TestConvertFileIsIdempotent(t *testing.T) {
	testlog.Start(t)
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i * 7)
	}
	in := writeInput(t, data)
	out := filepath.Join(t.TempDir(), "sprite_data.asm")

	if err := os.WriteFile(out, []byte(strings.Repeat("stale\n", 500)), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}
	if _, err := ConvertFile(in, out); err != nil {
		t.Fatalf("first convert: %v", err)
	}
	first, _ := os.ReadFile(out)
	if _, err := ConvertFile(in, out); err != nil {
		t.Fatalf("second convert: %v", err)
	}
	second, _ := os.ReadFile(out)
	if !bytes.Equal(first, second) {
		t.Fatalf("outputs differ between runs")
	}
	if string(first) != Format(data) {
		t.Fatalf("output does not match Format")
	}
}

func TestListingShapeAcrossLengths(t *testing.T) {
	testlog.Start(t)
	for _, n := range []int{0, 1, 63, 64, 65, 127, 128, 129, 1000} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		got := Format(data)

		if tokens := strings.Count(got, ", "); tokens != n {
			t.Fatalf("n=%d: expected %d tokens, got %d", n, n, tokens)
		}
		wantBreaks := 0
		if n > 0 {
			wantBreaks = Records(n) - 1
		}
		if breaks := strings.Count(got, "\n"); breaks != wantBreaks {
			t.Fatalf("n=%d: expected %d line breaks, got %d", n, wantBreaks, breaks)
		}
		lines := strings.Split(got, "\n")
		for i, line := range lines[:len(lines)-1] {
			if c := strings.Count(line, ", "); c != RecordSize {
				t.Fatalf("n=%d: line %d has %d tokens", n, i, c)
			}
		}
		if n > 0 && !strings.HasSuffix(got, ", ") {
			t.Fatalf("n=%d: listing should end with separator", n)
		}
		log.Debug().Int("bytes", n).Int("breaks", wantBreaks).Msg("listing shape checked")
	}
}

func TestEveryByteValueRendersDecimal(t *testing.T) {
	testlog.Start(t)
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	tokens := strings.Split(strings.ReplaceAll(Format(data), "\n", ""), ", ")
	tokens = tokens[:len(tokens)-1]
	if len(tokens) != 256 {
		t.Fatalf("expected 256 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			t.Fatalf("token %d %q: %v", i, tok, err)
		}
		if v != i {
			t.Fatalf("token %d parsed as %d", i, v)
		}
		if tok != strconv.Itoa(i) {
			t.Fatalf("token %d not canonical decimal: %q", i, tok)
		}
	}
}

func TestWriteMatchesFormat(t *testing.T) {
	testlog.Start(t)
	data := bytes.Repeat([]byte{255, 0, 17}, 100)
	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != Format(data) {
		t.Fatalf("Write and Format disagree")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestConvertStreams(t *testing.T) {
	testlog.Start(t)
	var out bytes.Buffer
	res, err := Convert(bytes.NewReader([]byte{9, 10, 11}), &out)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out.String() != "9, 10, 11, " {
		t.Fatalf("unexpected listing: %q", out.String())
	}
	if res.Bytes != 3 || res.Records != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := Convert(bytes.NewReader([]byte{1}), failingWriter{}); !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected write failure as ErrFileAccess, got %v", err)
	}
	if _, err := Convert(failingReader{}, &out); !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected read failure as ErrFileAccess, got %v", err)
	}
}

func TestRecords(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 64: 1, 65: 2, 128: 2, 129: 3}
	for n, want := range cases {
		if got := Records(n); got != want {
			t.Fatalf("Records(%d)=%d want %d", n, got, want)
		}
	}
}
