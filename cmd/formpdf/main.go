// seehuhn.de/go/formpdf - render structured form documents as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Formpdf renders a form document, given in JSON format, as a PDF file.
//
// Usage:
//
//	formpdf [-o out.pdf] [-date D] [-paper A4|A5|Letter] [-readable] [input.json]
//
// The input is read from standard input if no file name is given.
// The input has the following form:
//
//	{
//	  "title": "Contact Details",
//	  "generatedDate": "2024-05-01",
//	  "sections": [
//	    {
//	      "title": "Personal",
//	      "fields": [
//	        {"fieldKey": "email", "label": "Email", "required": true, "value": null}
//	      ]
//	    }
//	  ]
//	}
//
// If the document has no generation date and no -date option is given,
// the current date is used.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"seehuhn.de/go/formpdf"
	"seehuhn.de/go/formpdf/document"
)

var (
	outFile  = flag.String("o", "", "output file name (default: standard output)")
	date     = flag.String("date", "", "generation date shown below the title")
	paper    = flag.String("paper", "A4", "paper size (A4, A5 or Letter)")
	readable = flag.Bool("readable", false, "write uncompressed, human-readable PDF")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] [input.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
}

func run(inName string) error {
	box, ok := document.PaperSize(*paper)
	if !ok {
		return fmt.Errorf("unknown paper size %q", *paper)
	}

	if *outFile == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal, use -o")
	}

	var in io.Reader = os.Stdin
	if inName != "" {
		fd, err := os.Open(inName)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	doc, err := readDocument(in)
	if err != nil {
		return err
	}
	switch {
	case *date != "":
		doc.GeneratedDate = *date
	case doc.GeneratedDate == "":
		doc.GeneratedDate = time.Now().Format(time.DateOnly)
	}

	style, err := formpdf.DefaultStyle()
	if err != nil {
		return err
	}
	opt := &formpdf.Options{
		Style:         style.WithPageSize(box),
		HumanReadable: *readable,
	}
	data, err := formpdf.Render(doc, opt)
	if err != nil {
		return err
	}

	if *outFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(*outFile, data, 0o644)
}

// readDocument decodes a form document in JSON format.
func readDocument(r io.Reader) (*formpdf.Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	doc := &formpdf.Document{}
	err := dec.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("reading form document: %w", err)
	}
	if dec.More() {
		return nil, errors.New("reading form document: trailing data after JSON value")
	}
	return doc, nil
}
