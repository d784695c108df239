package churchcontent

import "encoding/json"

// encodeFields converts an entity or input struct into the field map stored
// as document data. A struct's "id" field, if any, is stripped: identifiers
// live outside document data.
func encodeFields(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	delete(m, "id")
	return m, nil
}

// decodeDocument maps a document's fields plus its identifier onto out.
// Fields absent from the stored document keep whatever out already holds, so
// decoding over a default value back-fills partially written documents.
func decodeDocument(doc Document, out interface{}) error {
	m := make(map[string]interface{}, len(doc.Data)+1)
	for k, v := range doc.Data {
		m[k] = v
	}
	if doc.ID != "" {
		m["id"] = doc.ID
	}
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
