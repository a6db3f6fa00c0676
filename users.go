// ABOUTME: User and account endpoints
// ABOUTME: GetAccount returns the record of the token's owning user

package letschat

import "net/http"

// GetUsers fetches user records, with the same skip/take omission rule as
// message listings.
func (c *Client) GetUsers(skip, take int) ([]Account, error) {
	var users []Account
	if err := c.call(http.MethodGet, []string{"users"}, pageParams(skip, take), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(id string) (*Account, error) {
	var user Account
	if err := c.call(http.MethodGet, []string{"users", id}, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAccount fetches the account the API token belongs to.
func (c *Client) GetAccount() (*Account, error) {
	var account Account
	if err := c.call(http.MethodGet, []string{"account"}, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
