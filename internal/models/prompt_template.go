package models

// PromptTemplate is a named structural hint mixed into generation prompts
// ("Web API", "CLI Tool", ...). Built-in templates are seeded at startup;
// users can add their own.
type PromptTemplate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null;unique" json:"name"`
	Content string `gorm:"type:text;not null;" json:"content"`
	BuiltIn bool   `gorm:"not null;default:false" json:"builtIn"`
}
