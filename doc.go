/*
Package framework is the root of a small application framework.

Command line applications are built with the [console] package, which handles commands, global flags, help screens, and styled output.

[console]: https://pkg.go.dev/github.com/gopalindians/framework/console
*/
package framework
