package server

import (
	"encoding/json"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/identops/sysid/internal/auth"
	"github.com/identops/sysid/internal/logger"
	"github.com/identops/sysid/internal/sysid"
)

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if err := auth.VerifyPassword(req.Username, req.Password); err != nil {
		logger.Info("Failed login attempt for user %s from %s", req.Username, remoteIP(r))
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	admin, _ := auth.IsAdmin(req.Username)
	tok, err := auth.SignHS256(a.secret, req.Username, admin, a.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	logger.Info("User %s logged in from %s", req.Username, remoteIP(r))
	a.issueCookie(w, tok)
	writeJSON(w, http.StatusOK, map[string]any{
		"token":    tok,
		"username": req.Username,
		"admin":    admin,
	})
}

func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) issueCookie(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(a.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *App) handleWhoami(w http.ResponseWriter, r *http.Request) {
	username := usernameFrom(r)
	p, err := sysid.LookupPasswdName(username)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username": username,
		"admin":    isAdminFrom(r),
		"passwd":   p,
	})
}

func (a *App) handleUserAttrs(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	ua, err := sysid.LookupUserAttr(name)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	if ua == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":     ua.Name,
		"attr":     ua.Attr,
		"profiles": ua.Profiles(),
	})
}

func (a *App) handlePasswd(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	uidStr := r.URL.Query().Get("uid")
	if (name == "") == (uidStr == "") {
		writeError(w, http.StatusBadRequest, "exactly one of name or uid is required")
		return
	}

	var (
		p   *sysid.Passwd
		err error
	)
	if name != "" {
		p, err = sysid.LookupPasswdName(name)
	} else {
		uid, perr := strconv.ParseUint(uidStr, 10, 32)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "uid must be a 32-bit unsigned integer")
			return
		}
		p, err = sysid.LookupPasswdID(uint32(uid))
	}
	if err != nil {
		writeLookupError(w, err)
		return
	}
	if p == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *App) handleGroups(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	gidStr := r.URL.Query().Get("gid")
	if (name == "") == (gidStr == "") {
		writeError(w, http.StatusBadRequest, "exactly one of name or gid is required")
		return
	}

	var (
		g   *sysid.Group
		err error
	)
	if name != "" {
		g, err = sysid.LookupGroupName(name)
	} else {
		gid, perr := strconv.ParseUint(gidStr, 10, 32)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "gid must be a 32-bit unsigned integer")
			return
		}
		g, err = sysid.LookupGroupID(uint32(gid))
	}
	if err != nil {
		writeLookupError(w, err)
		return
	}
	if g == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (a *App) handleNode(w http.ResponseWriter, r *http.Request) {
	nodename, err := sysid.Nodename()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	zonename, err := sysid.Zonename()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"nodename": nodename,
		"zone_id":  sysid.ZoneID(),
		"zone":     zonename,
	})
}

func (a *App) handleNotice(w http.ResponseWriter, r *http.Request) {
	if a.noticePath == "" {
		writeNotFound(w)
		return
	}
	b, err := os.ReadFile(a.noticePath)
	if err != nil {
		writeNotFound(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(RenderMarkdown(string(b))))
}
