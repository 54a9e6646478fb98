// ktx2info validates KTX2 files and prints their structure.
//
// Usage:
//
//	ktx2info [-q|--quiet] [-s|--strict] [-v|--verbose] <filename> [<filename> ...]
//
// Options:
//
//	-q, --quiet    Only output errors. Exit code indicates pass/fail.
//	-s, --strict   Compare the stored DFD and typeSize with the canonical values of the format.
//	-v, --verbose  Print levels, descriptor samples and key/value data.
//	-h, --help     Show this help message.
//
// Exit codes:
//
//	0: All files valid
//	1: One or more files invalid
//	2: Error (file not found, etc.)
package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/woozymasta/ktx2"
)

// Issue is a single validation problem found in a file.
type Issue struct {
	Severity string // "error" or "warning"
	Message  string
}

// Result holds the validation results for a file.
type Result struct {
	Filename string
	Reader   *ktx2.Reader
	Issues   []Issue
}

// IsValid returns true if there are no errors (warnings are ok).
func (r *Result) IsValid() bool {
	for _, issue := range r.Issues {
		if issue.Severity == "error" {
			return false
		}
	}
	return true
}

func (r *Result) addErrorf(format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: "error", Message: fmt.Sprintf(format, args...)})
}

func (r *Result) addWarningf(format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Severity: "warning", Message: fmt.Sprintf(format, args...)})
}

func main() {
	quiet := false
	strict := false
	verbose := false
	files := []string{}

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-q", "--quiet":
			quiet = true
		case "-s", "--strict":
			strict = true
		case "-v", "--verbose":
			verbose = true
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				printUsage()
				os.Exit(2)
			}
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input files specified")
		printUsage()
		os.Exit(2)
	}

	validCount := 0
	errorOccurred := false

	for _, filename := range files {
		if _, err := os.Stat(filename); err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", filename, err)
			errorOccurred = true
			continue
		}

		result := validateFile(filename, strict)
		if result.IsValid() {
			validCount++
		}

		if !quiet {
			printResult(result, verbose)
			continue
		}
		for _, issue := range result.Issues {
			if issue.Severity == "error" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", filename, issue.Message)
			}
		}
	}

	if len(files) > 1 && !quiet {
		fmt.Printf("\nSummary: %d of %d files valid\n", validCount, len(files))
	}

	if errorOccurred {
		os.Exit(2)
	}
	if validCount < len(files) {
		os.Exit(1)
	}
	os.Exit(0)
}

func printUsage() {
	fmt.Println(`Usage: ktx2info [options] <filename> [<filename> ...]

Validate KTX2 texture files and print their structure.

Options:
  -q, --quiet    Only output errors. Exit code indicates pass/fail.
  -s, --strict   Compare the stored DFD and typeSize with the canonical values of the format.
  -v, --verbose  Print levels, descriptor samples and key/value data.
  -h, --help     Show this help message.

Exit codes:
  0: All files valid
  1: One or more files invalid
  2: Error (file not found, permission denied, etc.)`)
}

// validateFile parses a file and runs the checks that go beyond NewReader.
func validateFile(filename string, strict bool) *Result {
	result := &Result{Filename: filename}

	r, err := ktx2.ReadFile(filename)
	if err != nil {
		result.addErrorf("%v", err)
		return result
	}
	result.Reader = r
	h := r.Header()

	if !h.Format.Known() && h.Format != ktx2.FormatUndefined {
		result.addWarningf("unknown format %s", h.Format)
	}
	if !h.SupercompressionScheme.Known() {
		result.addWarningf("unknown supercompression scheme %s", h.SupercompressionScheme)
	}
	if h.FaceCount != 1 && h.FaceCount != 6 {
		result.addErrorf("face count %d, must be 1 or 6", h.FaceCount)
	}

	basic, ok := r.BasicDataFormatDescriptor()
	if !ok {
		result.addErrorf("no basic data format descriptor")
	}

	if h.SupercompressionScheme == ktx2.SupercompressionNone {
		for it := r.Levels(); it.Len() > 0; {
			l, _ := it.Next()
			if l.ByteLength != l.UncompressedByteLength {
				result.addErrorf("level %d: stored %d bytes, uncompressed %d", l.Index, l.ByteLength, l.UncompressedByteLength)
			}
		}
	}

	kvs := r.KeyValueData().All()
	for i := 1; i < len(kvs); i++ {
		if kvs[i-1].Key >= kvs[i].Key {
			result.addWarningf("key/value data not sorted at %q", kvs[i].Key)
		}
	}

	if !strict || !h.Format.Known() {
		return result
	}

	if ts, _ := h.Format.TypeSize(); ts != h.TypeSize {
		result.addErrorf("typeSize %d, %s expects %d", h.TypeSize, h.Format, ts)
	}
	if ok {
		want, _ := h.Format.BasicDataFormatDescriptor()
		got := basic.Descriptor()
		if !reflect.DeepEqual(want, got) {
			result.addWarningf("descriptor differs from the canonical %s descriptor", h.Format)
		}
	}
	if _, ok := r.KeyValue(ktx2.KeyWriter); !ok {
		result.addWarningf("missing %s", ktx2.KeyWriter)
	}

	return result
}

func printResult(result *Result, verbose bool) {
	if result.IsValid() {
		fmt.Printf("%s: OK\n", result.Filename)
	} else {
		fmt.Printf("%s: INVALID\n", result.Filename)
	}
	for _, issue := range result.Issues {
		fmt.Printf("  [%s] %s\n", strings.ToUpper(issue.Severity), issue.Message)
	}

	r := result.Reader
	if r == nil || !verbose {
		return
	}

	fmt.Printf("  header: %s\n", r.Header())
	fmt.Printf("  data: %d bytes stored, %d bytes uncompressed\n", len(r.Data()), r.DataSpan())
	for it := r.Levels(); it.Len() > 0; {
		l, _ := it.Next()
		fmt.Printf("  level %d: offset %d, %d bytes (%d uncompressed)\n",
			l.Index, l.ByteOffset, l.ByteLength, l.UncompressedByteLength)
	}

	dfds := r.DataFormatDescriptors()
	for d, ok := dfds.Next(); ok; d, ok = dfds.Next() {
		fmt.Printf("  dfd: vendor %d type %d version %d, %d bytes\n",
			d.Header.VendorID, d.Header.DescriptorType, d.Header.VersionNumber, d.Header.DescriptorBlockSize)
		basic, err := d.Basic()
		if err != nil {
			continue
		}
		fmt.Printf("    model %s, primaries %s, transfer %s, block %v, planes %v\n",
			basic.ColorModel, basic.ColorPrimaries, basic.TransferFunction,
			basic.TexelBlockDimensions, basic.BytesPlanes)
		samples := basic.Samples()
		for s, ok := samples.Next(); ok; s, ok = samples.Next() {
			fmt.Printf("    sample: channel %d, bits %d+%d, %s, lower %#x, upper %#x\n",
				s.ChannelType, s.BitOffset, s.BitLength, s.Qualifiers, s.Lower, s.Upper)
		}
	}

	kvs := r.KeyValueData()
	for kv, ok := kvs.Next(); ok; kv, ok = kvs.Next() {
		fmt.Printf("  %s: %s\n", kv.Key, formatValue(kv.Value))
	}

	if sgd := r.SupercompressionGlobalData(); len(sgd) > 0 {
		fmt.Printf("  supercompression global data: %d bytes\n", len(sgd))
	}
}

// formatValue prints NUL-terminated UTF-8 values as text and everything else as a size.
func formatValue(v []byte) string {
	if n := len(v); n > 0 && v[n-1] == 0 && utf8.Valid(v[:n-1]) {
		return fmt.Sprintf("%q", v[:n-1])
	}

	return fmt.Sprintf("<%d bytes>", len(v))
}
