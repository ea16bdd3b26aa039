package utterclip

import "github.com/ashwelk/utterclip/pkg/utterclip/catalog"

// catalogAdapter adapts catalog.Client to the Catalog interface.
type catalogAdapter struct {
	client *catalog.Client
}

// NewSQLiteCatalog opens a sqlite-backed clip catalog.
func NewSQLiteCatalog(dbPath string) (Catalog, error) {
	client, err := catalog.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &catalogAdapter{client: client}, nil
}

func (a *catalogAdapter) RecordClip(rec ClipRecord) error {
	return a.client.RecordClip(&catalog.Clip{
		RunID:     rec.RunID,
		ClipID:    rec.ClipID,
		Path:      rec.Path,
		ParentWAV: rec.ParentWAV,
		Word:      rec.Word,
		StartSec:  rec.StartSec,
		EndSec:    rec.EndSec,
		Text:      rec.Text,
		Digest:    rec.Digest,
	})
}

func (a *catalogAdapter) Close() error {
	return a.client.Close()
}
