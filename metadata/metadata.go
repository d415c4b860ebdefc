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

// Package metadata describes form documents with XMP metadata and a
// document information dictionary.
package metadata

import (
	"golang.org/x/text/language"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/formpdf/pdf"
)

// Info is the document-level metadata of a PDF file.
//
// Dates are deliberately absent, so that rendering the same document twice
// gives identical files.
type Info struct {
	Title    string
	Subject  string
	Producer string
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

var xDefault = language.MustParse("x-default")

// Packet converts the metadata to an XMP packet.
func (info *Info) Packet() *xmp.Packet {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
	}
	pdfInfo := &PDF{}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, pdfInfo)
	return packet
}

// InfoDict returns the document information dictionary.
// Empty fields are omitted.
//
// See section 14.3.3 of ISO 32000-2:2020.
func (info *Info) InfoDict() pdf.Dict {
	dict := pdf.Dict{}
	if info.Title != "" {
		dict["Title"] = pdf.TextString(info.Title)
	}
	if info.Subject != "" {
		dict["Subject"] = pdf.TextString(info.Subject)
	}
	if info.Producer != "" {
		dict["Producer"] = pdf.TextString(info.Producer)
	}
	return dict
}

// Embed writes the XMP packet as a metadata stream and returns the
// reference of the stream.  If pretty is set, the XML is indented.
//
// See section 14.3.2 of ISO 32000-2:2020.
func Embed(w *pdf.Writer, packet *xmp.Packet, pretty bool) (pdf.Reference, error) {
	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return 0, err
	}

	opt := &xmp.PacketOptions{
		Pretty: pretty,
	}
	err = packet.Write(stm, opt)
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}
