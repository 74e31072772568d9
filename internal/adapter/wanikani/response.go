package wanikani

// collectionPage is one page of a WaniKani v2 collection response.
type collectionPage struct {
	Data  []resource `json:"data"`
	Pages struct {
		NextURL *string `json:"next_url"`
	} `json:"pages"`
}

// resource is a single subject or assignment. Subjects carry an id and
// characters; assignments carry a subject id and SRS stage. Fields outside
// the requesting method's interest decode to zero values.
type resource struct {
	ID   int64 `json:"id"`
	Data struct {
		Characters string `json:"characters"`
		SubjectID  int64  `json:"subject_id"`
		SRSStage   int    `json:"srs_stage"`
	} `json:"data"`
}
