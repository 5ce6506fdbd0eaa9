package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/tidwall/pretty"
)

// printData shows a successful result's body as indented JSON.
func printData(w io.Writer, res *api.Result) {
	if len(res.Data) == 0 {
		fmt.Fprintln(w, "Done.")
		return
	}
	_, _ = w.Write(pretty.Pretty(res.Data))
}

func printUsers(w io.Writer, users []models.UserSummary) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tEMPLOYEE ID\tDESIGNATION")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.EmployeeID, u.Designation)
	}
	_ = tw.Flush()
}

// decodeUsers accepts either a bare array or an object wrapping it under
// "users" or "data".
func decodeUsers(res *api.Result) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := res.Decode(&users); err == nil {
		return users, nil
	}

	var wrapped struct {
		Users []models.UserSummary `json:"users"`
		Data  []models.UserSummary `json:"data"`
	}
	if err := json.Unmarshal(res.Data, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Users != nil {
		return wrapped.Users, nil
	}
	return wrapped.Data, nil
}
