package money

import "testing"

func TestDisplay(t *testing.T) {
  cases := []struct {
    name  string
    value string
    want  string
  }{
    {name: "integer", value: "1", want: "$1.00"},
    {name: "fraction", value: "2.5", want: "$2.50"},
    {name: "thousands", value: "1250", want: "$1,250.00"},
    {name: "non numeric verbatim", value: "contact us", want: "contact us"},
    {name: "already formatted verbatim", value: "$3.00", want: "$3.00"},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if got := Display(tc.value); got != tc.want {
        t.Fatalf("got %q, want %q", got, tc.want)
      }
    })
  }
}
