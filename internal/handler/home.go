package handler

import "net/http"

// HandleHome routes the root path: authenticated users go to the dashboard,
// everyone else to the login form.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
