package controllers

import (
	"time"

	"burgerhouse/pkg/resp"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{reportService: service}
}

// GET /reports/sales?from=YYYY-MM-DD&to=YYYY-MM-DD
func (rc *ReportController) Sales(c *gin.Context) {
	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to")
	if !ok {
		return
	}
	f, err := rc.reportService.Sales(from, to)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, f)
}

// GET /reports/top-products?limit
func (rc *ReportController) TopProducts(c *gin.Context) {
	f, err := rc.reportService.TopProducts(utils.QueryInt(c, "limit", 10))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, f)
}

// dateQuery parses an optional day; it answers 400 itself on bad input.
func dateQuery(c *gin.Context, key string) (time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		resp.BadRequest(c, key+" must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}
