package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// packageParts returns the raw bytes of a part of an OOXML package, or nil
// when the part does not exist.
type packageParts func(name string) ([]byte, error)

// zipParts reads parts straight from the package archive.
func zipParts(r *zip.Reader) packageParts {
	return func(name string) ([]byte, error) {
		for _, f := range r.File {
			if f.Name == name {
				rc, err := f.Open()
				if err != nil {
					return nil, err
				}
				defer rc.Close()
				return io.ReadAll(rc)
			}
		}
		return nil, nil
	}
}

// fileParts reads parts from an opened workbook. Used for encrypted inputs,
// whose archive only exists after excelize decrypted it.
func fileParts(f *excelize.File) packageParts {
	return func(name string) ([]byte, error) {
		v, ok := f.Pkg.Load(name)
		if !ok {
			return nil, nil
		}
		data, _ := v.([]byte)
		return data, nil
	}
}

// ExtractDroppedObjects lists the drawing objects (charts, pictures, shapes)
// of every sheet in an OOXML package. These objects are not reproduced by
// the split and merge pipelines, so callers report them.
func ExtractDroppedObjects(readPart packageParts) (map[string][]models.DroppedObject, error) {
	drawings, err := readPart.sheetDrawings()
	if err != nil {
		return nil, err
	}
	result := make(map[string][]models.DroppedObject)
	for sheetName, drawingPart := range drawings {
		data, err := readPart(drawingPart)
		if err != nil || data == nil {
			continue
		}
		if objects := parseDrawingObjects(data); len(objects) > 0 {
			result[sheetName] = objects
		}
	}
	return result, nil
}

const (
	workbookPart     = "xl/workbook.xml"
	drawingRelSuffix = "/drawing"
)

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type sheetEntry struct {
	Name string `xml:"name,attr"`
	// RelID is the r:id attribute linking the sheet to its part.
	RelID string `xml:"id,attr"`
}

// relationships decodes the relationships of a package part; a part
// without a relationships part has none.
func (p packageParts) relationships(part string) ([]relationship, error) {
	dir, file := path.Split(part)
	relsPart := dir + "_rels/" + file + ".rels"
	data, err := p(relsPart)
	if err != nil || data == nil {
		return nil, err
	}
	var rels struct {
		Items []relationship `xml:"Relationship"`
	}
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("%s: %w", relsPart, err)
	}
	return rels.Items, nil
}

// sheetDrawings maps sheet names to the drawing part of the sheet, for
// sheets that have one.
func (p packageParts) sheetDrawings() (map[string]string, error) {
	data, err := p(workbookPart)
	if err != nil || data == nil {
		return nil, err
	}
	var wb struct {
		Sheets []sheetEntry `xml:"sheets>sheet"`
	}
	if err := xml.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("%s: %w", workbookPart, err)
	}
	wbRels, err := p.relationships(workbookPart)
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(wbRels))
	for _, rel := range wbRels {
		targets[rel.ID] = rel.Target
	}

	result := make(map[string]string)
	for _, sheet := range wb.Sheets {
		target, ok := targets[sheet.RelID]
		if !ok {
			continue
		}
		sheetPart := resolveTarget(workbookPart, target)
		rels, err := p.relationships(sheetPart)
		if err != nil {
			continue
		}
		for _, rel := range rels {
			// vmlDrawing carries comments and form controls, not drawing objects.
			if strings.HasSuffix(rel.Type, drawingRelSuffix) {
				result[sheet.Name] = resolveTarget(sheetPart, rel.Target)
				break
			}
		}
	}
	return result, nil
}

// resolveTarget resolves a relationship target against the part owning the
// relationship. Absolute targets are rooted at the package.
func resolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(path.Dir(source), target)
}

// parseDrawingObjects classifies the top-level object of every anchor in a
// drawing part.
func parseDrawingObjects(data []byte) []models.DroppedObject {
	var objects []models.DroppedObject

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				if obj, ok := parseAnchorObject(decoder); ok {
					objects = append(objects, obj)
				}
			}
		}
	}
	return objects
}

// parseAnchorObject consumes one anchor element and reports its object.
func parseAnchorObject(decoder *xml.Decoder) (models.DroppedObject, bool) {
	var obj models.DroppedObject
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "graphicFrame":
				if obj.Kind == "" {
					obj.Kind = "chart"
				}
			case "pic":
				if obj.Kind == "" {
					obj.Kind = "picture"
				}
			case "sp", "cxnSp", "grpSp":
				if obj.Kind == "" {
					obj.Kind = "shape"
				}
			case "cNvPr":
				if obj.Name == "" {
					for _, attr := range t.Attr {
						if attr.Name.Local == "name" {
							obj.Name = attr.Value
						}
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return obj, obj.Kind != ""
}
