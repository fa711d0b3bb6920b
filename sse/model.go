package sse

// Model is a plaintext record: field name to raw value bytes.
type Model map[string][]byte

// EncryptedModel is a record after per-field encryption or query
// generation: field name to its base64 wire form (or, for excluded
// fields, the original value passed through verbatim as a string).
type EncryptedModel map[string]string

// EncryptModel applies per-field searchable encryption to every field
// in model except those named in exclude, which are copied through
// unmodified.
func (c *Client) EncryptModel(model Model, exclude map[string]bool) (EncryptedModel, error) {
	out := make(EncryptedModel, len(model))
	for field, value := range model {
		if exclude[field] {
			out[field] = string(value)
			continue
		}
		ciphertext, err := c.Encrypt(value)
		if err != nil {
			return nil, err
		}
		out[field] = ciphertext
	}
	return out, nil
}

// DecryptModel is the inverse of EncryptModel.
func (c *Client) DecryptModel(model EncryptedModel, exclude map[string]bool) (Model, error) {
	out := make(Model, len(model))
	for field, value := range model {
		if exclude[field] {
			out[field] = []byte(value)
			continue
		}
		plaintext, err := c.Decrypt(value)
		if err != nil {
			return nil, err
		}
		out[field] = plaintext
	}
	return out, nil
}

// EncryptQuery turns a plaintext query (field name to search value)
// into the encrypted query parameters a server can match against, by
// applying Query to every value.
func (c *Client) EncryptQuery(params Model) (EncryptedModel, error) {
	out := make(EncryptedModel, len(params))
	for field, value := range params {
		query, err := c.Query(value)
		if err != nil {
			return nil, err
		}
		out[field] = query
	}
	return out, nil
}
