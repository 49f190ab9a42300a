package listing

import (
	"bufio"
	"io"
	"os"
	"strconv"
)

// RecordSize is the number of bytes rendered per output line.
const RecordSize = 64

const separator = ", "

// Result describes one completed conversion.
type Result struct {
	Bytes   int `json:"bytes"`
	Records int `json:"records"`
}

// Records returns the number of output lines needed for n bytes.
func Records(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + RecordSize - 1) / RecordSize
}

// ResultFor describes the listing of data.
func ResultFor(data []byte) Result {
	return Result{Bytes: len(data), Records: Records(len(data))}
}

// Append appends the listing of data to dst and returns the extended slice.
func Append(dst, data []byte) []byte {
	for i, b := range data {
		if i%RecordSize == 0 && i != 0 {
			dst = append(dst, '\n')
		}
		dst = strconv.AppendUint(dst, uint64(b), 10)
		dst = append(dst, separator...)
	}
	return dst
}

// Format returns the listing of data as a string.
func Format(data []byte) string {
	return string(Append(make([]byte, 0, encodedLen(len(data))), data))
}

// encodedLen is an upper bound on the listing size for n bytes.
func encodedLen(n int) int {
	return n*(3+len(separator)) + Records(n)
}

// Write renders data to w. Tokens are produced one record at a time so the
// whole listing is never held in memory twice.
func Write(w io.Writer, data []byte) error {
	buf := make([]byte, 0, encodedLen(RecordSize))
	for off := 0; off < len(data); off += RecordSize {
		end := min(off+RecordSize, len(data))
		buf = buf[:0]
		if off != 0 {
			buf = append(buf, '\n')
		}
		buf = Append(buf, data[off:end])
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Convert reads all of r and writes its listing to w.
func Convert(r io.Reader, w io.Writer) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, accessError("read", "", err)
	}
	bw := bufio.NewWriter(w)
	if err := Write(bw, data); err != nil {
		return Result{}, accessError("write", "", err)
	}
	if err := bw.Flush(); err != nil {
		return Result{}, accessError("write", "", err)
	}
	return ResultFor(data), nil
}

// ConvertFile reads inputPath in full and writes its listing to outputPath,
// creating or truncating it. The source is read before the destination is
// opened, so an unreadable source leaves no destination behind.
func ConvertFile(inputPath, outputPath string) (Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, accessError("read", inputPath, err)
	}
	return WriteFile(outputPath, data)
}

// WriteFile writes the listing of data to path, creating or truncating it.
// A failed write may leave a partial listing behind.
func WriteFile(path string, data []byte) (Result, error) {
	out, err := os.Create(path)
	if err != nil {
		return Result{}, accessError("create", path, err)
	}

	bw := bufio.NewWriter(out)
	if err := Write(bw, data); err != nil {
		_ = out.Close()
		return Result{}, accessError("write", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = out.Close()
		return Result{}, accessError("write", path, err)
	}
	if err := out.Close(); err != nil {
		return Result{}, accessError("close", path, err)
	}
	return ResultFor(data), nil
}
