// Package web 页面模板，编译进二进制
package web

import (
	"embed"
	"html"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	// 入库的文本已做过 HTML 转义，显示前还原，交给 html/template 再转义一次
	"unescape": html.UnescapeString,
	"list":     func(items ...string) []string { return items },
	"inc":      func(i int) int { return i + 1 },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
}

// Templates 解析全部页面，模板名为文件名
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

// Load 注册到 gin，之后 c.HTML 按文件名渲染
func Load(r *gin.Engine) error {
	tpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tpl)
	return nil
}
