package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"
)

var (
	oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipSignature = []byte("PK")
)

// sniffContainer validates the outer container of a workbook before it is
// handed to excelize. It returns the OOXML package reader when the input is a
// plain (unencrypted) package, or nil when excelize must decrypt it first.
// The declared sizes of a plain package are checked against maxUnzipped;
// archive/zip refuses to inflate an entry past its declared size.
func sniffContainer(data []byte, password string, maxUnzipped int64) (*zip.Reader, error) {
	if len(data) == 0 {
		return nil, malformed("empty input", nil)
	}
	if bytes.HasPrefix(data, oleSignature) {
		return nil, inspectCompoundFile(data, password)
	}
	if !bytes.HasPrefix(data, zipSignature) {
		return nil, malformed("not a zip package", nil)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, malformed("corrupt zip package", err)
	}
	var (
		hasXML, hasBin bool
		unzipped       uint64
	)
	for _, f := range zr.File {
		unzipped += f.UncompressedSize64
		if maxUnzipped > 0 && unzipped > uint64(maxUnzipped) {
			return nil, &LimitError{Limit: "unzipped_bytes", Max: maxUnzipped, Actual: int64(sumUncompressed(zr))}
		}
		switch f.Name {
		case "xl/workbook.xml":
			hasXML = true
		case "xl/workbook.bin":
			hasBin = true
		}
	}
	switch {
	case hasBin:
		return nil, unsupported("binary workbook (.xlsb)", nil)
	case !hasXML:
		return nil, malformed("zip package has no workbook part", nil)
	}
	return zr, nil
}

// inspectCompoundFile classifies an OLE2 compound file. Only encrypted OOXML
// packages are accepted, and only when a password is configured.
func inspectCompoundFile(data []byte, password string) error {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return malformed("corrupt compound file", err)
	}
	var encrypted, legacy bool
	app := ""
	for _, entry := range doc.File {
		switch entry.Name {
		case "EncryptedPackage":
			encrypted = true
		case "Workbook", "Book":
			legacy = true
		}
		if msoleps.IsMSOLEPS(entry.Initial) && strings.HasSuffix(entry.Name, "SummaryInformation") && app == "" {
			app = applicationName(entry)
		}
	}
	switch {
	case encrypted && password != "":
		return nil
	case encrypted:
		return unsupported("encrypted workbook requires a password", nil)
	case legacy && app != "":
		return unsupported(fmt.Sprintf("legacy binary workbook (.xls) written by %s", app), nil)
	case legacy:
		return unsupported("legacy binary workbook (.xls)", nil)
	}
	return unsupported("compound file without a workbook stream", nil)
}

// applicationName reads the producing application from a property set
// stream; it returns "" when the stream cannot be decoded.
func applicationName(entry *mscfb.File) string {
	props := msoleps.New()
	if err := props.Reset(entry); err != nil {
		return ""
	}
	for _, p := range props.Property {
		if p.Name == "AppName" {
			return strings.TrimRight(p.String(), "\x00")
		}
	}
	return ""
}

func sumUncompressed(zr *zip.Reader) uint64 {
	var n uint64
	for _, f := range zr.File {
		n += f.UncompressedSize64
	}
	return n
}
