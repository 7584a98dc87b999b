package controllers

import "github.com/gin-gonic/gin"

// dateRangeParams reads the range bounds from the query string. The
// documented names are date_start/date_end; the camelCase spellings are
// accepted as a fallback.
func dateRangeParams(ctx *gin.Context) (string, string) {
	dateStart := ctx.Query("date_start")
	if dateStart == "" {
		dateStart = ctx.Query("dateStart")
	}
	dateEnd := ctx.Query("date_end")
	if dateEnd == "" {
		dateEnd = ctx.Query("dateEnd")
	}
	return dateStart, dateEnd
}
