package pptx

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Slide is a parsed slide part. It keeps the raw part bytes alongside the
// parsed shape tree so shapes can be cloned byte-for-byte.
type Slide struct {
	doc  *Document
	path string
	raw  []byte
	tree slideXML
}

// Shape is one element of a slide's shape tree.
type Shape struct {
	node shapeNode
}

// shape tree children that are actual shapes, as opposed to the tree's own
// property elements (nvGrpSpPr, grpSpPr) or extension lists.
var shapeElements = map[string]bool{
	"sp":           true,
	"pic":          true,
	"grpSp":        true,
	"graphicFrame": true,
	"cxnSp":        true,
}

func (d *Document) parseSlide(partPath string) (*Slide, error) {
	data, ok := d.parts[partPath]
	if !ok {
		return nil, fmt.Errorf("slide part not found: %s", partPath)
	}
	s := &Slide{doc: d, path: partPath, raw: data}
	if err := xml.Unmarshal(data, &s.tree); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", partPath, err)
	}
	return s, nil
}

// Shapes returns the slide's shapes in document order.
func (s *Slide) Shapes() []Shape {
	shapes := make([]Shape, 0, len(s.tree.CSld.SpTree.Nodes))
	for _, n := range s.tree.CSld.SpTree.Nodes {
		if shapeElements[n.XMLName.Local] {
			shapes = append(shapes, Shape{node: n})
		}
	}
	return shapes
}

// IsGroup reports whether the shape is a grouped shape.
func (sh Shape) IsGroup() bool {
	return sh.node.XMLName.Local == "grpSp"
}

// IsPlaceholder reports whether the shape carries a placeholder marker.
func (sh Shape) IsPlaceholder() bool {
	return sh.node.ph() != nil
}

// PlaceholderIndex returns the ph idx, defaulting to 0 when absent.
func (sh Shape) PlaceholderIndex() int {
	ph := sh.node.ph()
	if ph == nil {
		return -1
	}
	return placeholderIndex(ph)
}

// PlaceholderType returns the ph type attribute, e.g. "title" or "body".
func (sh Shape) PlaceholderType() string {
	if ph := sh.node.ph(); ph != nil {
		return ph.Type
	}
	return ""
}

// TextLines returns one entry per non-empty paragraph of the shape's text
// body, each the concatenation of its run text.
func (sh Shape) TextLines() []string {
	if sh.node.TxBody == nil {
		return nil
	}
	var lines []string
	for _, p := range sh.node.TxBody.P {
		var b strings.Builder
		for _, r := range p.R {
			b.WriteString(r.T)
		}
		if b.Len() > 0 {
			lines = append(lines, b.String())
		}
	}
	return lines
}

// Text returns the shape's text with paragraphs joined by newlines.
func (sh Shape) Text() string {
	return strings.Join(sh.TextLines(), "\n")
}

func placeholderIndex(ph *phXML) int {
	if ph.Idx == "" {
		return 0
	}
	n, err := strconv.Atoi(ph.Idx)
	if err != nil {
		return 0
	}
	return n
}

// footerPlaceholder reports whether a layout placeholder belongs to the
// footer family (date, footer text, slide number), which is never cloned
// onto generated slides.
func footerPlaceholder(phType string) bool {
	switch phType {
	case "ftr", "dt", "sldNum":
		return true
	}
	return false
}

// bodyFontSize is the run size written for generated body paragraphs, in
// hundredths of a point (18pt).
const bodyFontSize = 1800

var rootTagRe = regexp.MustCompile(`<([A-Za-z0-9]+):sld\b[^>]*>`)

// AppendSlide creates a new slide at the end of the presentation. The new
// slide uses base's layout: the layout's placeholders (minus the footer
// family) are cloned onto it, followed by a deep copy of every
// non-placeholder, non-group shape of base. The placeholder with idx 0
// receives the title text; any other placeholder receives one paragraph per
// body line at a fixed size and outline level 0. Grouped shapes on base are
// skipped with a warning.
func (d *Document) AppendSlide(base *Slide, title string, body []string) (*Slide, error) {
	layoutPath, err := d.layoutPath(base)
	if err != nil {
		return nil, err
	}
	layoutData, ok := d.parts[layoutPath]
	if !ok {
		return nil, fmt.Errorf("layout part not found: %s", layoutPath)
	}
	var layout slideXML
	if err := xml.Unmarshal(layoutData, &layout); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", layoutPath, err)
	}

	// Reuse the base slide's root start tag so every namespace declared
	// there is available to the cloned shape XML. The presentation
	// namespace prefix is taken from it; drawing elements assume the
	// conventional a: prefix.
	rootMatch := rootTagRe.FindSubmatch(base.raw)
	if rootMatch == nil {
		return nil, fmt.Errorf("root element not found in %s", base.path)
	}
	rootTag := string(rootMatch[0])
	p := string(rootMatch[1])

	var shapes []string

	// Clone layout placeholders and fill the title/body targets. The idx 0
	// placeholder is the title; any other placeholder is the body.
	titleIdx, bodyIdx := -1, -1
	for _, n := range layout.CSld.SpTree.Nodes {
		if n.XMLName.Local != "sp" {
			continue
		}
		ph := n.ph()
		if ph == nil || footerPlaceholder(ph.Type) {
			continue
		}
		shapes = append(shapes, wrapShape(p, "sp", n.Raw))
		if placeholderIndex(ph) == 0 {
			titleIdx = len(shapes) - 1
		} else {
			bodyIdx = len(shapes) - 1
		}
	}
	if titleIdx >= 0 {
		shapes[titleIdx] = replaceTxBody(p, shapes[titleIdx], titleTxBody(p, title))
	}
	if bodyIdx >= 0 {
		shapes[bodyIdx] = replaceTxBody(p, shapes[bodyIdx], bodyTxBody(p, body))
	}

	// Copy the base slide's decoration shapes.
	for _, n := range base.tree.CSld.SpTree.Nodes {
		if !shapeElements[n.XMLName.Local] {
			continue
		}
		if n.XMLName.Local == "grpSp" {
			logrus.Warn("Skipping grouped shape on base slide")
			continue
		}
		if n.ph() != nil {
			continue
		}
		shapes = append(shapes, wrapShape(p, n.XMLName.Local, n.Raw))
	}

	slideNum := d.nextSlideNumber()
	slidePath := fmt.Sprintf("ppt/slides/slide%d.xml", slideNum)

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(rootTag)
	fmt.Fprintf(&b, "<%s:cSld><%s:spTree>", p, p)
	fmt.Fprintf(&b, "<%s:nvGrpSpPr><%s:cNvPr id=\"1\" name=\"\"/><%s:cNvGrpSpPr/><%s:nvPr/></%s:nvGrpSpPr>", p, p, p, p, p)
	fmt.Fprintf(&b, "<%s:grpSpPr><a:xfrm><a:off x=\"0\" y=\"0\"/><a:ext cx=\"0\" cy=\"0\"/><a:chOff x=\"0\" y=\"0\"/><a:chExt cx=\"0\" cy=\"0\"/></a:xfrm></%s:grpSpPr>", p, p)
	for _, sh := range shapes {
		b.WriteString(sh)
	}
	fmt.Fprintf(&b, "</%s:spTree></%s:cSld>", p, p)
	fmt.Fprintf(&b, "<%s:clrMapOvr><a:masterClrMapping/></%s:clrMapOvr>", p, p)
	fmt.Fprintf(&b, "</%s:sld>", p)

	d.setPart(slidePath, []byte(b.String()))
	d.setPart(
		fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum),
		[]byte(fmt.Sprintf(`%s<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="%s" Target="../%s"/></Relationships>`,
			xml.Header, layoutRelType, strings.TrimPrefix(layoutPath, "ppt/"))),
	)

	if err := d.registerSlide(slideNum); err != nil {
		return nil, err
	}
	d.slidePaths = append(d.slidePaths, slidePath)
	return d.parseSlide(slidePath)
}

// layoutPath resolves the slide layout referenced by a slide's rels part.
func (d *Document) layoutPath(s *Slide) (string, error) {
	dir := s.path[:strings.LastIndex(s.path, "/")]
	relsPath := dir + "/_rels/" + s.path[strings.LastIndex(s.path, "/")+1:] + ".rels"
	rels, err := d.relationships(relsPath)
	if err != nil {
		return "", err
	}
	for _, rel := range rels.Relationship {
		if rel.Type == layoutRelType {
			return resolveTarget(dir, rel.Target), nil
		}
	}
	return "", fmt.Errorf("no slide layout relationship in %s", relsPath)
}

var sldIdLstCloseRe = regexp.MustCompile(`</([A-Za-z0-9]+):sldIdLst>`)

// registerSlide wires a new slide part into the presentation: the slide id
// list, the presentation relationships and the package content types.
func (d *Document) registerSlide(slideNum int) error {
	rels, err := d.relationships("ppt/_rels/presentation.xml.rels")
	if err != nil {
		return err
	}
	relID := d.nextRelID(rels)

	relData, err := insertBeforeClose(
		d.parts["ppt/_rels/presentation.xml.rels"],
		"Relationships",
		[]byte(fmt.Sprintf(`<Relationship Id="%s" Type="%s" Target="slides/slide%d.xml"/>`, relID, slideRelType, slideNum)),
	)
	if err != nil {
		return fmt.Errorf("updating presentation rels: %w", err)
	}

	presData := d.parts["ppt/presentation.xml"]
	var pres presentationXML
	if err := xml.Unmarshal(presData, &pres); err != nil {
		return fmt.Errorf("parsing presentation.xml: %w", err)
	}
	m := sldIdLstCloseRe.FindSubmatch(presData)
	if m == nil {
		return fmt.Errorf("sldIdLst not found in presentation.xml")
	}
	presData, err = insertBeforeClose(
		presData,
		"sldIdLst",
		[]byte(fmt.Sprintf(`<%s:sldId id="%d" r:id="%s"/>`, m[1], nextSlideID(&pres), relID)),
	)
	if err != nil {
		return fmt.Errorf("updating presentation.xml: %w", err)
	}

	ctData, err := insertBeforeClose(
		d.parts["[Content_Types].xml"],
		"Types",
		[]byte(fmt.Sprintf(`<Override PartName="/ppt/slides/slide%d.xml" ContentType="%s"/>`, slideNum, slideContentType)),
	)
	if err != nil {
		return fmt.Errorf("updating content types: %w", err)
	}

	d.setPart("ppt/_rels/presentation.xml.rels", relData)
	d.setPart("ppt/presentation.xml", presData)
	d.setPart("[Content_Types].xml", ctData)
	return nil
}

// wrapShape reconstructs a shape element from its captured inner XML.
func wrapShape(prefix, local string, inner []byte) string {
	return fmt.Sprintf("<%s:%s>%s</%s:%s>", prefix, local, inner, prefix, local)
}

// replaceTxBody swaps a shape's text body for a generated one. The txBody
// element never nests, so plain index search is sufficient. A shape without
// a text body gets one appended.
func replaceTxBody(prefix, shape, txBody string) string {
	openTag := "<" + prefix + ":txBody"
	closeTag := "</" + prefix + ":txBody>"
	start := strings.Index(shape, openTag)
	end := strings.Index(shape, closeTag)
	if start < 0 || end < 0 {
		spClose := "</" + prefix + ":sp>"
		return strings.Replace(shape, spClose, txBody+spClose, 1)
	}
	return shape[:start] + txBody + shape[end+len(closeTag):]
}

// titleTxBody builds the text body for a title placeholder.
func titleTxBody(prefix, title string) string {
	return fmt.Sprintf(
		`<%s:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>%s</a:t></a:r><a:endParaRPr lang="en-US" dirty="0"/></a:p></%s:txBody>`,
		prefix, escapeXML(title), prefix)
}

// bodyTxBody builds the text body for a body placeholder, one paragraph per
// line at outline level 0.
func bodyTxBody(prefix string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s:txBody><a:bodyPr/><a:lstStyle/>", prefix)
	if len(lines) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="en-US"/></a:p>`)
	}
	for _, line := range lines {
		fmt.Fprintf(&b, `<a:p><a:pPr lvl="0"/><a:r><a:rPr lang="en-US" sz="%d" dirty="0"/><a:t>%s</a:t></a:r></a:p>`,
			bodyFontSize, escapeXML(line))
	}
	fmt.Fprintf(&b, "</%s:txBody>", prefix)
	return b.String()
}
