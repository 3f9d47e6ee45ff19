package models

import "net/http"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewResponse creates a ResponseModel with the given code, data and text.
// Successful responses are version 2; error envelopes are built by the API
// layer with version 1.
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponse creates a 200 response wrapping the given data.
func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse creates a 200 response whose data is a single entry plus
// the references it mentions.
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	data := map[string]interface{}{
		"entry":      entry,
		"references": references,
	}
	return NewOKResponse(data)
}

// NewListResponse creates a 200 response whose data is a list plus the
// references it mentions. limitExceeded reports that the list was truncated.
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return NewListResponseWithRange(list, references, false)
}

// NewListResponseWithRange is NewListResponse with an explicit limitExceeded
// flag for endpoints that cap their result size.
func NewListResponseWithRange(list interface{}, references ReferencesModel, limitExceeded bool) ResponseModel {
	data := map[string]interface{}{
		"list":          list,
		"references":    references,
		"limitExceeded": limitExceeded,
	}
	return NewOKResponse(data)
}
