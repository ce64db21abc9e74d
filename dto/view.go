package dto

type UpdateViewData struct{}

type RagnarokData struct{}
