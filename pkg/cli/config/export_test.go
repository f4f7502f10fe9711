package config

// NewPromptsForTest creates a Prompts config for testing purposes
func NewPromptsForTest(filePath string) *Prompts {
	return &Prompts{
		filePath: filePath,
	}
}

// NewTasteForTest creates a Taste config for testing purposes
func NewTasteForTest(apiKey, baseURL string) *Taste {
	return &Taste{
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}
