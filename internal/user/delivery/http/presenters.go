package http

// --- Request DTOs ---

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Response DTOs ---

type registerResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type loginResp struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
}

type verifyResp struct {
	Status   string `json:"status"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
