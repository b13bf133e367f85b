// Package actions contains the bodies of the spriteit commands. Each
// action is a linear procedure: validate preconditions, run git, report
// the outcome through the logger.
package actions
