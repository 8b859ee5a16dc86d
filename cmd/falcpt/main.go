// Command falcpt parses a FASTA-like file into an LCP dump.
//
// Usage: falcpt <file> <level> [chunk-size]
//
// Each record (delimited by a ">" header line) is parsed and deepened to
// <level> independently, then its cores are appended to <file>.lcpt. A
// trailing zero byte marks the end of the stream once every record has
// been written.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	lcp "github.com/f0t1h/lcptools"
)

const defaultChunkSize = 1 << 20

var validExtensions = []string{".fasta", ".fa", ".fastq", ".fq"}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: falcpt <file> <level> [chunk-size]")
	}

	infile := args[0]
	if !validExtension(infile) {
		return fmt.Errorf("invalid file extension %q: supported are %s", infile, strings.Join(validExtensions, ", "))
	}

	level, err := strconv.Atoi(args[1])
	if err != nil || level < 1 {
		return fmt.Errorf("level argument must be a positive integer, got %q", args[1])
	}

	chunkSize := defaultChunkSize
	if len(args) >= 3 {
		chunkSize, err = strconv.Atoi(args[2])
		if err != nil || chunkSize < 3 {
			return fmt.Errorf("chunk-size argument must be an integer >= 3, got %q", args[2])
		}
	}

	outfile := infile + ".lcpt"
	fmt.Println("Output:", outfile)
	return processFasta(infile, outfile, level, chunkSize)
}

func validExtension(name string) bool {
	for _, ext := range validExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func processFasta(infilename, outfilename string, level, chunkSize int) error {
	in, err := os.Open(infilename)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outfilename)
	if err != nil {
		return err
	}
	defer out.Close()

	writeRecord := func(sequence []byte) error {
		if len(sequence) == 0 {
			return nil
		}
		parse, err := lcp.NewChunked(sequence, level, chunkSize)
		if err != nil {
			return err
		}
		_, err = parse.WriteTo(out)
		return err
	}

	var sequence []byte
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1024), bufio.MaxScanTokenSize)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			if err := writeRecord(sequence); err != nil {
				return err
			}
			sequence = sequence[:0]
			continue
		}
		sequence = append(sequence, line...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := writeRecord(sequence); err != nil {
		return err
	}

	// trailing "done" marker: a multi-record stream is complete only once
	// this byte has been written.
	_, err = out.Write([]byte{0})
	return err
}
