package nav

// Help lists the key and mouse bindings shared by the interactive front-ends.
const Help = `Mandelbrot navigation
  left click       zoom into the outlined rectangle
  right button     zoom out (held: keeps zooming out)
  + or =           zoom in around the centre
  arrow keys       move the view by a quarter of its size
  1 / 2            fewer / more iterations
  0                switch colour scheme
  S                save a snapshot
  O                back to the starting view
  Esc              quit
`
