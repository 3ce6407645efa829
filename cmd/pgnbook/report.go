package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// printReport writes v as indented JSON to stdout, the report format both
// `book` and `find` use.
func printReport(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func percent(part, whole int64) int64 {
	if whole == 0 {
		return 0
	}
	return part * 100 / whole
}

func perSecond(count int64, elapsed time.Duration) int64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return count
	}
	return int64(float64(count) / secs)
}

func deriveBookName(pathList string) string {
	first := pathList
	for i := 0; i < len(pathList); i++ {
		if pathList[i] == ',' {
			first = pathList[:i]
			break
		}
	}
	base := first
	for i := len(first) - 1; i >= 0; i-- {
		if first[i] == '/' {
			base = first[i+1:]
			break
		}
	}
	for i := 0; i < len(base); i++ {
		if base[i] == '.' {
			return fmt.Sprintf("%s.bin", base[:i])
		}
	}
	return base + ".bin"
}
