package compressing_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	compressing "github.com/go-git/go-compressing"
)

func ExampleCompress() {
	buf := bytes.NewBuffer(nil)
	stats, err := compressing.Compress(context.Background(), buf, strings.NewReader("TOBEORNOTTOBEORTOBEORNOT"), nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d -> %d bytes, saved %.2f%%\n", stats.Read, stats.Written, stats.SpaceSaved())
	// Output: 24 -> 32 bytes, saved -33.33%
}

func ExampleCompressFile() {
	fs := memfs.New()
	if err := util.WriteFile(fs, "input", []byte(strings.Repeat("abc", 1000)), 0644); err != nil {
		panic(err)
	}

	stats, err := compressing.CompressFile(context.Background(), fs, "input", "input.lzw", &compressing.FileOptions{
		Truncate: true,
		Verify:   true,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(stats.Read)
	// Output: 3000
}
