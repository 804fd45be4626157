package skills

import "slices"

// Category groups selectable skills.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// SelectableSkill is a catalog skill annotated with the user's selection.
type SelectableSkill struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// CategoryView is a category as shown on the profile page.
type CategoryView struct {
	Name   string            `json:"name"`
	Skills []SelectableSkill `json:"skills"`
}

var categories = []Category{
	{Name: "Programming Languages", Skills: []string{"Python", "JavaScript", "Java", "C++", "Go", "Rust"}},
	{Name: "Web Frameworks", Skills: []string{"React", "Angular", "Vue.js", "Django", "Flask"}},
	{Name: "Data Science", Skills: []string{"Machine Learning", "Deep Learning", "Pandas", "NumPy"}},
	{Name: "Databases", Skills: []string{"MySQL", "PostgreSQL", "MongoDB", "Redis"}},
}

// Categories returns a copy of the skill catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Skills: slices.Clone(c.Skills)}
	}
	return out
}

// Annotate marks each catalog skill present in selected.
func Annotate(selected []string) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		view := CategoryView{Name: c.Name, Skills: make([]SelectableSkill, 0, len(c.Skills))}
		for _, name := range c.Skills {
			view.Skills = append(view.Skills, SelectableSkill{Name: name, Selected: slices.Contains(selected, name)})
		}
		views = append(views, view)
	}
	return views
}
