package wpcomics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

type recorder struct {
	misses    []string
	fallbacks []int
}

func (r *recorder) ExtractionMiss(field, _ string) {
	r.misses = append(r.misses, field)
}

func (r *recorder) ChapterNumberFallback(_ string, index int) {
	r.fallbacks = append(r.fallbacks, index)
}

func parse(t *testing.T, html string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	return doc.Selection
}

func catalogHTML(cells int, nextPage bool) string {
	var b strings.Builder
	b.WriteString(`<html><body><ul class="list_grid">`)
	for i := 1; i <= cells; i++ {
		fmt.Fprintf(&b, `<li>
<div class="book_avatar"><a href="https://truyenqqto.com/truyen-tranh/manga-%[1]d"><img src="//i.truyenqq.com/cover-%[1]d.jpg"></a></div>
<div class="book_info"><div class="book_name"><h3><a href="https://truyenqqto.com/truyen-tranh/manga-%[1]d"> Manga %[1]d </a></h3></div></div>
</li>`, i)
	}
	b.WriteString(`</ul><div class="page_redirect"><a href="#"><p>1</p></a>`)
	if nextPage {
		b.WriteString(`<a href="/trang-2.html"><span aria-hidden="true">›</span></a>`)
	}
	b.WriteString(`</div></body></html>`)

	return b.String()
}

const detailsHTML = `<html><body>
<div class="book_detail">
  <div class="book_avatar"><img src="//i.truyenqq.com/cover.jpg" alt="cover"></div>
  <div class="book_other">
    <h1 itemprop="name">  Thám Tử Lừng Danh Conan </h1>
    <ul class="list-info">
      <li class="author row"><p class="name col-xs-3">Tác giả</p><p class="col-xs-9"><a href="#">Gosho Aoyama</a><a href="#"> Yutaka Abe </a></p></li>
      <li class="status row"><p class="name col-xs-3">Tình trạng</p><p class="col-xs-9"> Đang Cập Nhật </p></li>
    </ul>
    <ul class="list01"><li class="li03"><a href="#">Trinh Thám</a></li><li class="li03"><a href="#">Học Đường</a></li></ul>
  </div>
</div>
<div class="story-detail-info detail-content"><p>Kudo Shinichi là một thám tử.  </p>
<p>   Anh bị teo nhỏ.</p></div>
<div class="works-chapter-list">
  <div class="works-chapter-item"><div class="name-chap"><a href="https://truyenqqto.com/truyen-tranh/conan-chap-10.5.html">Chương 10.5</a></div><div class="time-chap">15/03/2024</div></div>
  <div class="works-chapter-item"><div class="name-chap"><a href="/truyen-tranh/conan-chap-10.html">Chuong 10</a></div><div class="time-chap">2 giờ trước</div></div>
  <div class="works-chapter-item"><div class="name-chap"><a href="/truyen-tranh/conan-oneshot.html">Oneshot</a></div><div class="time-chap">01/01/2020</div></div>
</div>
</body></html>`

const pagesHTML = `<html><body>
<div class="page-chapter"><img data-original="//cdn.truyenqq.com/1.jpg" src="/lazy.gif"></div>
<div class="page-chapter"><img data-cdn="https://cdn2.truyenqq.com/2.jpg"></div>
<div class="page-chapter"><img></div>
<div class="page-chapter"><img src="https://cdn.truyenqq.com/3.jpg"></div>
</body></html>`
