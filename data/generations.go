package data

// GenerationDef maps an upstream generation machine name to its number.
type GenerationDef struct {
	Name   string `json:"name"`   // Machine name (e.g., "generation-iv")
	Number int    `json:"number"` // Release grouping, 1-9
	Roman  string `json:"roman"`  // Display numeral (e.g., "IV")
}

// GenerationsFile represents the structure of generations.json.
type GenerationsFile struct {
	Generations []GenerationDef `json:"generations"`
}

// LoadGenerations loads the generation table from the embedded generations.json file.
func LoadGenerations() ([]GenerationDef, error) {
	file, err := Load[GenerationsFile]("generations.json")
	if err != nil {
		return nil, err
	}
	return file.Generations, nil
}
