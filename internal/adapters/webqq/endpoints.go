package webqq

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
)

// Endpoints holds the base URL of every host the protocol talks to. Paths
// and query shapes are fixed; only the hosts vary.
type Endpoints struct {
	UILogin  string
	SSLLogin string
	S        string
	D1       string
	PingHot  string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		UILogin:  "https://ui.ptlogin2.qq.com",
		SSLLogin: "https://ssl.ptlogin2.qq.com",
		S:        "http://s.web2.qq.com",
		D1:       "http://d1.web2.qq.com",
		PingHot:  "http://pinghot.qq.com",
	}
}

const (
	appID       = "501004106"
	loginTarget = "http://w.qq.com/proxy.html"
)

func (e Endpoints) loginPage() string {
	q := url.Values{}
	q.Set("daid", "164")
	q.Set("target", "self")
	q.Set("style", "16")
	q.Set("mibao_css", "m_webqq")
	q.Set("appid", appID)
	q.Set("enable_qlogin", "0")
	q.Set("no_verifyimg", "1")
	q.Set("s_url", loginTarget)
	q.Set("f_url", "loginerroralert")
	q.Set("strong_login", "1")
	q.Set("login_state", "10")
	q.Set("t", "20131024001")
	return e.UILogin + "/cgi-bin/login?" + q.Encode()
}

func (e Endpoints) qrShow() string {
	q := url.Values{}
	q.Set("appid", appID)
	q.Set("e", "0")
	q.Set("l", "M")
	q.Set("s", "5")
	q.Set("d", "72")
	q.Set("v", "4")
	q.Set("t", randomToken())
	return e.SSLLogin + "/ptqrshow?" + q.Encode()
}

func (e Endpoints) qrLogin() string {
	q := url.Values{}
	q.Set("webqq_type", "10")
	q.Set("remember_uin", "1")
	q.Set("login2qq", "1")
	q.Set("aid", appID)
	q.Set("u1", loginTarget+"?login2qq=1&webqq_type=10")
	q.Set("ptredirect", "0")
	q.Set("ptlang", "2052")
	q.Set("daid", "164")
	q.Set("from_ui", "1")
	q.Set("pttype", "1")
	q.Set("dumy", "")
	q.Set("fp", "loginerroralert")
	q.Set("action", fmt.Sprintf("0-0-%d", 1_000_000+rand.IntN(900_000)))
	q.Set("mibao_css", "m_webqq")
	q.Set("t", "undefined")
	q.Set("g", "1")
	q.Set("js_type", "0")
	q.Set("js_ver", "10141")
	q.Set("login_sig", "")
	q.Set("pt_randsalt", "0")
	return e.SSLLogin + "/ptqrlogin?" + q.Encode()
}

func (e Endpoints) pingHot() string {
	q := url.Values{}
	q.Set("dm", "w.qq.com.hot")
	q.Set("url", "/")
	q.Set("hottag", "smartqq.im.polltimeout")
	q.Set("hotx", "9999")
	q.Set("hoty", "9999")
	q.Set("rand", strconv.Itoa(10_000+rand.IntN(90_000)))
	return e.PingHot + "/pingd?" + q.Encode()
}

func (e Endpoints) vfwebqq(ptwebqq string, clientID int64) string {
	q := url.Values{}
	q.Set("ptwebqq", ptwebqq)
	q.Set("clientid", strconv.FormatInt(clientID, 10))
	q.Set("psessionid", "")
	q.Set("t", randomToken())
	return e.S + "/api/getvfwebqq?" + q.Encode()
}

func (e Endpoints) login2() string {
	return e.D1 + "/channel/login2"
}

func (e Endpoints) onlineBuddies(vfwebqq string, clientID int64, psessionid string) string {
	q := url.Values{}
	q.Set("vfwebqq", vfwebqq)
	q.Set("clientid", strconv.FormatInt(clientID, 10))
	q.Set("psessionid", psessionid)
	q.Set("t", randomToken())
	return e.D1 + "/channel/get_online_buddies2?" + q.Encode()
}

func (e Endpoints) userFriends() string {
	return e.S + "/api/get_user_friends2"
}

func (e Endpoints) groupNameList() string {
	return e.S + "/api/get_group_name_list_mask2"
}

// friendUIN resolves a uin to its public number; kind is 1 for buddies and
// 4 for groups.
func (e Endpoints) friendUIN(uin int64, kind int, vfwebqq string) string {
	q := url.Values{}
	q.Set("tuin", strconv.FormatInt(uin, 10))
	q.Set("type", strconv.Itoa(kind))
	q.Set("vfwebqq", vfwebqq)
	q.Set("t", "0.1")
	return e.S + "/api/get_friend_uin2?" + q.Encode()
}

func (e Endpoints) discussList(clientID int64, psessionid, vfwebqq string) string {
	q := url.Values{}
	q.Set("clientid", strconv.FormatInt(clientID, 10))
	q.Set("psessionid", psessionid)
	q.Set("vfwebqq", vfwebqq)
	q.Set("t", randomToken())
	return e.S + "/api/get_discus_list?" + q.Encode()
}

func (e Endpoints) friendInfo(uin int64, vfwebqq string, clientID int64, psessionid string) string {
	q := url.Values{}
	q.Set("tuin", strconv.FormatInt(uin, 10))
	q.Set("vfwebqq", vfwebqq)
	q.Set("clientid", strconv.FormatInt(clientID, 10))
	q.Set("psessionid", psessionid)
	q.Set("t", randomToken())
	return e.S + "/api/get_friend_info2?" + q.Encode()
}

func (e Endpoints) poll() string {
	return e.D1 + "/channel/poll2"
}

func (e Endpoints) sendBuddy() string {
	return e.D1 + "/channel/send_buddy_msg2"
}

func (e Endpoints) sendGroup() string {
	return e.D1 + "/channel/send_qun_msg2"
}

func (e Endpoints) sendDiscuss() string {
	return e.D1 + "/channel/send_discu_msg2"
}

// Referers and origins the web client sends with each family of calls.
func (e Endpoints) sProxy() string {
	return e.S + "/proxy.html?v=20130916001&callback=1&id=1"
}

func (e Endpoints) d1Proxy() string {
	return e.D1 + "/proxy.html?v=20151105001&callback=1&id=2"
}

// cookieHosts lists the URLs whose cookies make up a persisted session.
func (e Endpoints) cookieHosts() []string {
	return []string{e.UILogin + "/", e.SSLLogin + "/", e.S + "/", e.D1 + "/"}
}

func randomToken() string {
	return strconv.FormatFloat(rand.Float64(), 'f', -1, 64)
}
