package ofximport

import (
	"io"
	"io/ioutil"

	"github.com/golang/glog"
)

// NewTreeFromOFX parses the given OFX/QFX file into a document tree.
//
// The raw bytes are preprocessed and run through the given cleaner to
// produce well formed XML before the tree is built.
func NewTreeFromOFX(reader io.Reader, cleaner Cleaner) (*Node, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	data = preprocessOFXData(data)
	if err := cleaner.Init(data); err != nil {
		return nil, err
	}
	cleanXML, err := cleaner.CleanupXML()
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("cleanXML: %s", cleanXML.String())
	return NewTree(cleanXML)
}
