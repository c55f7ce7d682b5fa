// Package document maps catalog records onto the stored document shape shared
// by every store driver. Firestore writers stamp timestamps themselves, so the
// timestamp fields carry no firestore name.
package document

import "time"

type Furniture struct {
	Name          string     `bson:"name" dynamodbav:"name" firestore:"name"`
	Category      string     `bson:"category" dynamodbav:"category" firestore:"category"`
	Description   string     `bson:"description" dynamodbav:"description" firestore:"description"`
	ImageURL      string     `bson:"imageUrl" dynamodbav:"imageUrl" firestore:"imageUrl"`
	Model3DURL    string     `bson:"model3dUrl,omitempty" dynamodbav:"model3dUrl,omitempty" firestore:"model3dUrl,omitempty"`
	Difficulty    string     `bson:"difficulty" dynamodbav:"difficulty" firestore:"difficulty"`
	EstimatedTime int        `bson:"estimatedTime" dynamodbav:"estimatedTime" firestore:"estimatedTime"`
	Rating        float64    `bson:"rating" dynamodbav:"rating" firestore:"rating"`
	ReviewCount   int        `bson:"reviewCount" dynamodbav:"reviewCount" firestore:"reviewCount"`
	Tags          []string   `bson:"tags" dynamodbav:"tags" firestore:"tags"`
	IsActive      bool       `bson:"isActive" dynamodbav:"isActive" firestore:"isActive"`
	Materials     []Material `bson:"materials" dynamodbav:"materials" firestore:"materials"`
	Steps         []Step     `bson:"steps" dynamodbav:"steps" firestore:"steps"`
	CreatedAt     *time.Time `bson:"createdAt,omitempty" dynamodbav:"createdAt,omitempty" firestore:"-"`
	UpdatedAt     *time.Time `bson:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty" firestore:"-"`
}

type Material struct {
	ID          string      `bson:"id" dynamodbav:"id" firestore:"id"`
	Name        string      `bson:"name" dynamodbav:"name" firestore:"name"`
	Description string      `bson:"description" dynamodbav:"description" firestore:"description"`
	Quantity    int         `bson:"quantity" dynamodbav:"quantity" firestore:"quantity"`
	ImageURL    string      `bson:"imageUrl" dynamodbav:"imageUrl" firestore:"imageUrl"`
	Model3DURL  string      `bson:"model3dUrl,omitempty" dynamodbav:"model3dUrl,omitempty" firestore:"model3dUrl,omitempty"`
	Type        string      `bson:"type" dynamodbav:"type" firestore:"type"`
	Dimensions  *Dimensions `bson:"dimensions,omitempty" dynamodbav:"dimensions,omitempty" firestore:"dimensions,omitempty"`
	Material    string      `bson:"material" dynamodbav:"material" firestore:"material"`
	Color       string      `bson:"color" dynamodbav:"color" firestore:"color"`
	Notes       []string    `bson:"notes" dynamodbav:"notes" firestore:"notes"`
}

// Dimensions keeps only the measurements that apply to the part.
type Dimensions struct {
	Length   *float64 `bson:"length,omitempty" dynamodbav:"length,omitempty" firestore:"length,omitempty"`
	Width    *float64 `bson:"width,omitempty" dynamodbav:"width,omitempty" firestore:"width,omitempty"`
	Height   *float64 `bson:"height,omitempty" dynamodbav:"height,omitempty" firestore:"height,omitempty"`
	Diameter *float64 `bson:"diameter,omitempty" dynamodbav:"diameter,omitempty" firestore:"diameter,omitempty"`
}

type Step struct {
	StepNumber        int      `bson:"stepNumber" dynamodbav:"stepNumber" firestore:"stepNumber"`
	Title             string   `bson:"title" dynamodbav:"title" firestore:"title"`
	Description       string   `bson:"description" dynamodbav:"description" firestore:"description"`
	ImageURL          string   `bson:"imageUrl" dynamodbav:"imageUrl" firestore:"imageUrl"`
	Model3DURL        string   `bson:"model3dUrl,omitempty" dynamodbav:"model3dUrl,omitempty" firestore:"model3dUrl,omitempty"`
	RequiredMaterials []string `bson:"requiredMaterials" dynamodbav:"requiredMaterials" firestore:"requiredMaterials"`
	Tools             []string `bson:"tools" dynamodbav:"tools" firestore:"tools"`
	EstimatedTime     int      `bson:"estimatedTime" dynamodbav:"estimatedTime" firestore:"estimatedTime"`
	Difficulty        string   `bson:"difficulty" dynamodbav:"difficulty" firestore:"difficulty"`
	Warnings          []string `bson:"warnings" dynamodbav:"warnings" firestore:"warnings"`
	Tips              []string `bson:"tips" dynamodbav:"tips" firestore:"tips"`
	VideoURL          string   `bson:"videoUrl,omitempty" dynamodbav:"videoUrl,omitempty" firestore:"videoUrl,omitempty"`
}

type Category struct {
	Name      string     `bson:"name" dynamodbav:"name" firestore:"name"`
	Icon      string     `bson:"icon" dynamodbav:"icon" firestore:"icon"`
	Order     int        `bson:"order" dynamodbav:"order" firestore:"order"`
	CreatedAt *time.Time `bson:"createdAt,omitempty" dynamodbav:"createdAt,omitempty" firestore:"-"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty" firestore:"-"`
}

// Unset lists the optional top-level fields that are empty on f. An upsert
// removes them so a replaced document does not keep stale values.
func (f *Furniture) Unset() []string {
	if f.Model3DURL == "" {
		return []string{"model3dUrl"}
	}
	return nil
}

// Unset is empty: every category field is always written.
func (c *Category) Unset() []string { return nil }
