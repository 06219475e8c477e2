package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// part is one named XML part of the package.
type part struct {
	name string
	data string
}

// ProduceBytes serializes the presentation to an in-memory .pptx.
func (p *Presentation) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the .pptx package to w and returns the byte count.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []part{
		{"[Content_Types].xml", p.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML},
		{"docProps/app.xml", appPropsXML},
		{"ppt/presentation.xml", p.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", p.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i := range p.slides {
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), p.slideXML(i)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), p.slideRelsXML(i)},
		)
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.data); err != nil {
			return cw.n, fmt.Errorf("write part %s: %w", part.name, err)
		}
	}
	for i, m := range p.media {
		f, err := zw.Create(p.mediaPartName(ImageRef(i)))
		if err != nil {
			return cw.n, fmt.Errorf("create media part %d: %w", i, err)
		}
		if _, err := f.Write(m.data); err != nil {
			return cw.n, fmt.Errorf("write media part %d: %w", i, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finalize package: %w", err)
	}
	return cw.n, nil
}

func (p *Presentation) mediaPartName(ref ImageRef) string {
	return fmt.Sprintf("ppt/media/image%d.%s", int(ref)+1, p.media[ref].ext)
}

func (p *Presentation) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	seen := map[string]bool{}
	for _, m := range p.media {
		if seen[m.ext] {
			continue
		}
		seen[m.ext] = true
		fmt.Fprintf(&b, `<Default Extension=%q ContentType=%q/>`, m.ext, m.contentType)
	}
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

func (p *Presentation) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a=%q xmlns:r=%q xmlns:p=%q>`, nsDrawing, nsRels, nsPresML)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, p.widthEMU, p.heightEMU)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (p *Presentation) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type=%q Target="slideMasters/slideMaster1.xml"/>`, relTypeSlideMaster)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type=%q Target="slides/slide%d.xml"/>`, 2+i, relTypeSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// slideImageRels maps each image placed on the slide to its rel id.
// rId1 is reserved for the layout relationship.
func (p *Presentation) slideImageRels(idx int) map[ImageRef]string {
	rels := map[ImageRef]string{}
	next := 2
	for _, sh := range p.slides[idx].shapes {
		if sh.pic == nil {
			continue
		}
		if _, ok := rels[sh.pic.ref]; !ok {
			rels[sh.pic.ref] = fmt.Sprintf("rId%d", next)
			next++
		}
	}
	return rels
}

func (p *Presentation) slideXML(idx int) string {
	rels := p.slideImageRels(idx)

	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a=%q xmlns:r=%q xmlns:p=%q>`, nsDrawing, nsRels, nsPresML)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(emptyShapeTree)

	// Shape id 1 is the group shape; content starts at 2.
	shapeID := 2
	for _, sh := range p.slides[idx].shapes {
		switch {
		case sh.pic != nil:
			writePictureXML(&b, shapeID, rels[sh.pic.ref], sh.pic.box)
		case sh.txt != nil:
			writeTextBoxXML(&b, shapeID, sh.txt)
		}
		shapeID++
	}

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func (p *Presentation) slideRelsXML(idx int) string {
	rels := p.slideImageRels(idx)

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type=%q Target="../slideLayouts/slideLayout1.xml"/>`, relTypeSlideLayout)
	// Deterministic order: walk shapes, emit each ref once.
	emitted := map[ImageRef]bool{}
	for _, sh := range p.slides[idx].shapes {
		if sh.pic == nil || emitted[sh.pic.ref] {
			continue
		}
		emitted[sh.pic.ref] = true
		fmt.Fprintf(&b, `<Relationship Id=%q Type=%q Target="../media/image%d.%s"/>`,
			rels[sh.pic.ref], relTypeImage, int(sh.pic.ref)+1, p.media[sh.pic.ref].ext)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func writeXfrm(b *strings.Builder, box Rect) {
	fmt.Fprintf(b, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(box.Left), emu(box.Top), emu(box.Width), emu(box.Height))
}

func writePictureXML(b *strings.Builder, id int, relID string, box Rect) {
	fmt.Fprintf(b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/>`, id, id)
	b.WriteString(`<p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>`)
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed=%q/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, relID)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, box)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	b.WriteString(`</p:spPr></p:pic>`)
}

func writeTextBoxXML(b *strings.Builder, id int, t *textbox) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/>`, id, id)
	b.WriteString(`<p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	b.WriteString(`<p:spPr>`)
	writeXfrm(b, t.box)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/>`)
	b.WriteString(`</p:spPr>`)

	// Zero insets, wrapping, middle anchoring; one centered paragraph.
	b.WriteString(`<p:txBody>`)
	b.WriteString(`<a:bodyPr wrap="square" lIns="0" tIns="0" rIns="0" bIns="0" anchor="ctr"/>`)
	b.WriteString(`<a:lstStyle/>`)
	b.WriteString(`<a:p><a:pPr algn="ctr"/>`)

	bold := "0"
	if t.style.Bold {
		bold = "1"
	}
	fmt.Fprintf(b, `<a:r><a:rPr lang="en-US" sz="%d" b="%s" dirty="0">`, hundredthsPt(t.style.SizePt), bold)
	fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, t.style.Color.Hex())
	if t.style.FontFamily != "" {
		family := escapeXML(t.style.FontFamily)
		fmt.Fprintf(b, `<a:latin typeface="%s"/><a:ea typeface="%s"/>`, family, family)
	}
	b.WriteString(`</a:rPr>`)
	fmt.Fprintf(b, `<a:t>%s</a:t>`, escapeXML(t.text))
	b.WriteString(`</a:r></a:p></p:txBody></p:sp>`)
}

func hundredthsPt(pt float64) int {
	return int(pt*100 + 0.5)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
