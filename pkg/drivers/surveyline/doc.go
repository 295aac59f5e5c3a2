// Package surveyline adapts survey prompts into a prompt line source: each
// read asks one survey input on the terminal. Sessions keep their parsing,
// validation, and retry loop; survey contributes the interactive front end.
package surveyline
