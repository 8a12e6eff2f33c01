package ofximport

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Cleaner normalizes raw OFX data to valid XML.
//
// OFX 1.x files are SGML like and routinely omit starting or closing tags.
// A Cleaner is initialized once with the raw file bytes and produces a well
// formed XML rendition of the same content.
type Cleaner interface {
	Init(data []byte) error
	CleanupXML() (*bytes.Buffer, error)
}

type cleaner struct {
	data []byte
}

// NewCleaner returns an uninitialized cleaner.
func NewCleaner() Cleaner {
	return &cleaner{}
}

// Init locates the start of XML like data within the given raw bytes.
func (c *cleaner) Init(data []byte) error {
	xmlIndex := bytes.Index(data, []byte("<OFX>"))
	if xmlIndex == -1 {
		return fmt.Errorf("error - invalid file, OFX tag not found")
	}
	c.data = data[xmlIndex:]
	return nil
}

// CleanupXML returns cleaned XML from the initialized data.
func (c *cleaner) CleanupXML() (*bytes.Buffer, error) {
	var (
		tagStack    = NewStack()      // A stack to keep parsed aggregate tags.
		lastData    string            // Holds the last parsed char data.
		lastElement *xml.StartElement // Last parsed element start tag.
		cleanXML    bytes.Buffer      // Buffer to hold cleaned XML.
	)

	// Start a xml decoder on the context of source data that is XML like.
	reader := bytes.NewReader(c.data)
	decoder := xml.NewDecoder(reader)

	// Read parsed XML tokens from the XML decoder into token and re-assemble them into another
	// buffer, while adding any missing starting or closing tags and trimming spaces/newlines.
	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.CharData:
			lastData = EscapeString(strings.TrimSpace(string([]byte(t))))
			glog.V(3).Infof("case chardata (%s) %#v", lastData, t)
		case xml.StartElement:
			glog.V(3).Infof("case start element %s", t.Name.Local)
			// If last data exists, it takes highest precedence. This is a start tag and last data
			// exists implies that the previous end tag is missing.
			if lastData != "" {
				glog.V(3).Infof("StartTag: previous tag needs to be closed: %s %v", lastData, lastElement)
				// If last data exists but no last element, the current tag being a start element
				// implies the data is missing both start and end tags.
				if lastElement == nil {
					return nil, fmt.Errorf("error: charData(%s) missing start and end tags", lastData)
				}
				writeElement(lastElement, lastData, &cleanXML)
				lastData = ""
				lastElement = nil
			}
			// If this tag is an aggregate, flush it and push it on the stack for dequeue later.
			// If this tag is an element, update lastElement as it can't have nested tags.
			if IsAggregate(t.Name.Local) {
				glog.V(3).Infof("StartTag: %s is aggregate, pushing to stack", t.Name.Local)
				element := t
				tagStack.Push(&element)
				writeStartTag(&element, &cleanXML)
			} else {
				glog.V(3).Infof("StartTag: %s is NOT aggregate, updating lastElement", t.Name.Local)
				element := t
				lastElement = &element
			}
			glog.V(3).Infof("Stack: %#v", tagStack.Dump())
		case xml.EndElement:
			glog.V(3).Infof("case end element %s", t.Name.Local)
			isAggregate := IsAggregate(t.Name.Local)
			// If last data exists, it takes highest precedence. This is an end tag and last data
			// exists implies this must be the corresponding end tag if this is an element.
			// If this is an aggregate, the previous element end tag is missing.
			if lastData != "" {
				glog.V(3).Infof("EndTag: previous tag needs to be closed: %s %v", lastData, lastElement)
				// If this is an element tag but not the same as lastElement, that is an error.
				if lastElement != nil && t.Name != lastElement.Name && !isAggregate {
					// There is a last element as well this is a data (non aggregate) element.
					// We can not determine which of the two is missing a closing tag.
					return nil, fmt.Errorf("error: charData(%s) has ambigious closing tags", lastData)
				}
				// If this is an aggregate tag and lastElement isn't set, that is an error.
				if lastElement == nil && isAggregate {
					return nil, fmt.Errorf("error: charData(%s) missing start and end tags", lastData)
				}
				if lastElement != nil {
					// Implies this tag is aggregate or same as lastElement.
					writeElement(lastElement, lastData, &cleanXML)
				} else {
					// Implies this tag is not aggregate.
					writeElementFromName(t.Name, lastData, &cleanXML)
				}
				lastData = ""
				lastElement = nil
			}

			if isAggregate {
				glog.V(3).Infof("EndTag: %s is aggregate, popping from stack", t.Name.Local)
				glog.V(3).Infof("Stack: %#v", tagStack.Dump())
				// Close every open tag till the current closing tag is matched.
				for !tagStack.IsEmpty() {
					lastTag, err := tagStack.Pop()
					if err != nil {
						return nil, err
					}
					writeEndTag(lastTag.Name, &cleanXML)
					if lastTag.Name.Local == t.Name.Local {
						break
					}
				}
				glog.V(3).Infof("Stack: %#v", tagStack.Dump())
			}
		}
	}
	return &cleanXML, nil
}
