// Package pptx reads and mutates PPTX (Office Open XML Presentation)
// packages: opening a template, appending slides cloned from an existing
// slide's layout and decoration shapes, and saving the result.
package pptx

import "encoding/xml"

// Content type and relationship constants used when registering new slides.
const (
	slideContentType = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	slideRelType     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	layoutRelType    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
)

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// slideXML represents a ppt/slides/slide*.xml or slideLayout*.xml file.
// Layouts share the same cSld/spTree structure as slides.
type slideXML struct {
	CSld cSldXML `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML captures every child of the shape tree in document order so
// cloned shapes keep their z-order. Raw holds the exact inner XML of each
// element, which is what gets copied onto generated slides.
type spTreeXML struct {
	Nodes []shapeNode `xml:",any"`
}

type shapeNode struct {
	XMLName          xml.Name
	Raw              []byte      `xml:",innerxml"`
	NvSpPr           *nvPropsXML `xml:"nvSpPr"`
	NvPicPr          *nvPropsXML `xml:"nvPicPr"`
	NvGraphicFramePr *nvPropsXML `xml:"nvGraphicFramePr"`
	NvCxnSpPr        *nvPropsXML `xml:"nvCxnSpPr"`
	TxBody           *txBodyXML  `xml:"txBody"`
}

// ph returns the node's placeholder marker, if any. Each shape kind wraps
// the same cNvPr/nvPr pair in a differently named element, so a picture or
// graphic frame placeholder carries its ph under nvPicPr or
// nvGraphicFramePr rather than nvSpPr.
func (n shapeNode) ph() *phXML {
	for _, props := range [...]*nvPropsXML{n.NvSpPr, n.NvPicPr, n.NvGraphicFramePr, n.NvCxnSpPr} {
		if props != nil {
			return props.NvPr.Ph
		}
	}
	return nil
}

// nvPropsXML models the non-visual property wrapper shared by the shape
// kinds (nvSpPr, nvPicPr, nvGraphicFramePr, nvCxnSpPr).
type nvPropsXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

// phXML is the placeholder marker. The idx attribute defaults to 0 when
// absent, which is how title placeholders are usually written.
type phXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

// txBodyXML represents text body content.
type txBodyXML struct {
	P []pXML `xml:"p"`
}

type pXML struct {
	PPr *pPrXML `xml:"pPr"`
	R   []rXML  `xml:"r"`
}

type pPrXML struct {
	Lvl int `xml:"lvl,attr"`
}

type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

type rPrXML struct {
	Sz int `xml:"sz,attr"` // hundredths of a point
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
