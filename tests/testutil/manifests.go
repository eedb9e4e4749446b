package testutil

// Manifest fixtures shared by package tests
const (
	ScenarioJSON = `{
  "contentPatterns": ["./templates/**/*.html", "./**/templates/**/*.html"],
  "theme": {"extend": {}},
  "plugins": []
}`

	ScaffoldYAML = `contentPatterns:
  - ./templates/**/*.html
  - ./**/templates/**/*.html
  - ./static/src/**/*.{js,jsx,ts,tsx}
theme:
  extend: {}
plugins: []
`

	MalformedContentYAML = `contentPatterns: "./templates/**/*.html"
`
)
