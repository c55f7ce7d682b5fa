package catalog

type catalogFile struct {
	Version    string          `yaml:"version"`
	Furniture  []furnitureYAML `yaml:"furniture"`
	Categories []categoryYAML  `yaml:"categories"`
}

type furnitureYAML struct {
	Name          string         `yaml:"name"`
	Category      string         `yaml:"category"`
	Description   string         `yaml:"description"`
	ImageURL      string         `yaml:"imageUrl"`
	Model3DURL    string         `yaml:"model3dUrl"`
	Difficulty    string         `yaml:"difficulty"`
	EstimatedTime int            `yaml:"estimatedTime"`
	Rating        float64        `yaml:"rating"`
	ReviewCount   int            `yaml:"reviewCount"`
	Tags          []string       `yaml:"tags"`
	IsActive      *bool          `yaml:"isActive"`
	Materials     []materialYAML `yaml:"materials"`
	Steps         []stepYAML     `yaml:"steps"`
}

type materialYAML struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Quantity    int             `yaml:"quantity"`
	ImageURL    string          `yaml:"imageUrl"`
	Model3DURL  string          `yaml:"model3dUrl"`
	Type        string          `yaml:"type"`
	Dimensions  *dimensionsYAML `yaml:"dimensions"`
	Substance   string          `yaml:"material"`
	Color       string          `yaml:"color"`
	Notes       []string        `yaml:"notes"`
}

type dimensionsYAML struct {
	Length   *float64 `yaml:"length"`
	Width    *float64 `yaml:"width"`
	Height   *float64 `yaml:"height"`
	Diameter *float64 `yaml:"diameter"`
}

type stepYAML struct {
	StepNumber        int      `yaml:"stepNumber"`
	Title             string   `yaml:"title"`
	Description       string   `yaml:"description"`
	ImageURL          string   `yaml:"imageUrl"`
	Model3DURL        string   `yaml:"model3dUrl"`
	RequiredMaterials []string `yaml:"requiredMaterials"`
	Tools             []string `yaml:"tools"`
	EstimatedTime     int      `yaml:"estimatedTime"`
	Difficulty        string   `yaml:"difficulty"`
	Warnings          []string `yaml:"warnings"`
	Tips              []string `yaml:"tips"`
	VideoURL          string   `yaml:"videoUrl"`
}

type categoryYAML struct {
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Order int    `yaml:"order"`
}
