// Package strutil 字符串辅助函数
package strutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowercaseFirstLetter 将首字母转为小写
func LowercaseFirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

var (
	spaceBeforeTag  = regexp.MustCompile(`[\t ]+<`)
	spaceBetweenTag = regexp.MustCompile(`>[\t ]+<`)
	spaceAfterTag   = regexp.MustCompile(`>[\t ]+$`)
	spaceRun        = regexp.MustCompile(`[\n\t ]+`)
)

// RemoveHTMLWhitespace 压缩 HTML 片段中的空白
//
// 依次：删除换行，删除标签前、标签之间和末尾标签后的空白，
// 其余连续空白合并为一个空格。
func RemoveHTMLWhitespace(html string) string {
	html = strings.ReplaceAll(html, "\n", "")
	html = spaceBeforeTag.ReplaceAllString(html, "<")
	html = spaceBetweenTag.ReplaceAllString(html, "><")
	html = spaceAfterTag.ReplaceAllString(html, ">")
	return spaceRun.ReplaceAllString(html, " ")
}
