package wpcomics

import (
	"wpcomics/internal/domain"
	"wpcomics/internal/mapper"
)

const truyenQQProxy = "https://images2-focus-opensocial.googleusercontent.com/gadgets/proxy?container=focus&gadget=a&no_expand=1&resize_h=0&rewriteMime=image%2F*&url="

// TruyenQQ returns the bundled profile for truyenqqto.com.
func TruyenQQ() Profile {
	p := Profile{
		Name:    "TruyenQQ",
		BaseURL: "https://truyenqqto.com",
		Viewer:  domain.ViewerRTL,
		Lang:    "vi-vn",

		Listings: mapper.Table{
			"Truyện con gái":  "truyen-con-gai",
			"Truyện con trai": "truyen-con-trai",
		},
		Status: mapper.Literal{
			Ongoing:   []string{"Đang Cập Nhật"},
			Completed: []string{"Hoàn Thành"},
		},
		Dates: mapper.DateLayout{Pattern: "dd/MM/yyyy"},

		Selectors: Selectors{
			NextPage: `div.page_redirect span[aria-hidden=true]:contains("›")`,

			MangaCell:           "ul.list_grid li",
			MangaCellTitle:      "div.book_info > div.book_name > h3 > a",
			MangaCellURL:        "div.book_info > div.book_name > h3 > a",
			MangaCellImage:      "div.book_avatar img",
			MangaCellImageAttrs: []string{"src"},

			DetailsTitle:        "div.book_other h1[itemprop=name]",
			DetailsCover:        "div.book_avatar img",
			DetailsAuthor:       "li.author.row p.col-xs-9 a",
			DetailsDescription:  "div.story-detail-info.detail-content",
			DetailsTags:         "ul.list01 > li a",
			DetailsTagsSplitter: "",
			DetailsStatus:       "li.status.row p.col-xs-9",
			DetailsChapters:     "div.works-chapter-item",
			ChapterAnchor:       "div.name-chap a",
			ChapterDate:         "div.time-chap",
			PageImage:           "div.page-chapter img",
			PageImageAttrs:      []string{"data-original", "data-cdn", "src"},
		},
		Pagination: Pagination{
			Segment:   "/trang-",
			Extension: ".html",
		},
		Search: SearchConfig{
			KeywordPath:  "/tim-kiem",
			QueryParam:   "q",
			AdvancedPath: "/tim-kiem-nang-cao.html",
			IncludeParam: "category",
			ExcludeParam: "notcategory",
			PageParam:    "page",
			Params: []SelectParam{
				{Name: "Tình trạng", Param: "status", ZeroIsUnset: true},
				{Name: "Quốc gia", Param: "country"},
				{Name: "Số lượng chapter", Param: "minchapter", Values: []string{"0", "50", "100", "200", "300", "400", "500"}},
				{Name: "Sắp xếp theo", Param: "sort"},
			},
		},
		Images: ImageConfig{
			ServerSettingKey: "serverSelection",
			ProxyOption:      2,
			ProxyEndpoint:    truyenQQProxy,
		},

		ChapterSkipFirst:   false,
		VinahostProtection: true,
	}

	if err := p.Validate(); err != nil {
		panic(err)
	}

	return p
}
