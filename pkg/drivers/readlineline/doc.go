// Package readlineline adapts a chzyer/readline instance into a prompt line
// source, so sessions get history, line editing, and Ctrl+C handling from a
// real terminal. The instance is borrowed unless NewTerminal built it; the
// source never closes a borrowed one.
package readlineline
