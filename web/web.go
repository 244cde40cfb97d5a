// Package web 内嵌的单页前端：宇航员任命历史查询页
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
