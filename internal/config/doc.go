// Package config defines the burnin configuration surface: the YAML file
// describing what a validation run should exercise, environment-derived CI
// context, and per-stage retry budgets.
package config
